// Command seeder posts a demo match sheet to a running API so the
// leaderboards and achievement worker have events to work with.
//
// Usage:
//
//	SEED_TOKEN=<admin jwt> SEED_MATCH_ID=<uuid> go run ./cmd/seeder
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

const defaultAPIURL = "http://localhost:8080"

// Event matches models.RawEvent
type Event struct {
	Type            string `json:"type"`
	Minute          int    `json:"minute"`
	PlayerID        string `json:"player_id,omitempty"`
	PlayerName      string `json:"player_name,omitempty"`
	TeamID          string `json:"team_id,omitempty"`
	RelatedPlayerID string `json:"related_player_id,omitempty"`
	Detail          string `json:"detail,omitempty"`
}

// demoSheet identifies players by name only, the way keeper events
// usually arrive from the match sheet.
var demoSheet = []Event{
	{Type: "goal", Minute: 12, PlayerName: "Sam Kerr", Detail: "right foot"},
	{Type: "save", Minute: 20, PlayerName: "Mary Earps", Detail: "low dive"},
	{Type: "card", Minute: 34, PlayerName: "Leah Williamson", Detail: "yellow"},
	{Type: "save", Minute: 51, PlayerName: "Mary Earps"},
	{Type: "own_goal", Minute: 63, PlayerName: "Lucy Bronze"},
	{Type: "goal", Minute: 78, PlayerName: "Sam Kerr", Detail: "header"},
	{Type: "clean_sheet", Minute: 90, PlayerName: "Mary Earps"},
}

func main() {
	apiURL := getEnv("SEED_API_URL", defaultAPIURL)
	token := os.Getenv("SEED_TOKEN")
	matchID := os.Getenv("SEED_MATCH_ID")
	if token == "" || matchID == "" {
		log.Fatal("SEED_TOKEN and SEED_MATCH_ID are required")
	}

	payload, err := json.Marshal(demoSheet)
	if err != nil {
		log.Fatalf("Failed to marshal events: %v", err)
	}

	url := fmt.Sprintf("%s/api/v1/admin/matches/%s/events", apiURL, matchID)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("Status: %s\n", resp.Status)
	fmt.Printf("Response: %s\n", string(body))

	if resp.StatusCode != http.StatusAccepted {
		os.Exit(1)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
