// Command chartgen renders SVG bar charts from the match event log.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

func main() {
	outDir := flag.String("out", "charts", "output directory")
	flag.Parse()

	dsn := os.Getenv("CLICKHOUSE_URL")
	if dsn == "" {
		log.Fatal("CLICKHOUSE_URL is required")
	}
	opts, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		log.Fatalf("Invalid CLICKHOUSE_URL: %v", err)
	}

	ctx := context.Background()
	conn, err := clickhouse.Open(opts)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := conn.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping ClickHouse: %v", err)
	}

	charts := []struct {
		file  string
		title string
		color string
		query string
	}{
		{
			file:  "goals_by_minute.svg",
			title: "Goals by Minute",
			color: "#2ecc71",
			query: `
				SELECT concat(toString(intDiv(minute, 15) * 15), '+') AS bucket, count() AS goals
				FROM match_events
				WHERE event_type = 'goal'
				GROUP BY bucket
				ORDER BY min(minute)`,
		},
		{
			file:  "event_types.svg",
			title: "Events by Type",
			color: "#4a90e2",
			query: `
				SELECT event_type, count() AS events
				FROM match_events
				GROUP BY event_type
				ORDER BY events DESC
				LIMIT 10`,
		},
	}

	for _, c := range charts {
		labels, values, err := queryCounts(ctx, conn, c.query)
		if err != nil {
			log.Printf("Failed to query %s: %v", c.title, err)
			continue
		}
		if len(labels) == 0 {
			fmt.Printf("No data found for %s.\n", c.title)
			continue
		}
		saveChart(*outDir, c.file, generateBarChartSVG(c.title, labels, values, c.color))
	}
}

// queryCounts reads (label, count) rows.
func queryCounts(ctx context.Context, conn driver.Conn, query string) ([]string, []uint64, error) {
	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var labels []string
	var values []uint64
	for rows.Next() {
		var label string
		var val uint64
		if err := rows.Scan(&label, &val); err != nil {
			continue
		}
		labels = append(labels, label)
		values = append(values, val)
	}
	return labels, values, rows.Err()
}

func saveChart(dir, filename, svg string) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatal(err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Chart generated: %s\n", path)
}
