package main

import (
	"fmt"
	"html"
	"strings"
)

const (
	chartWidth   = 600
	chartHeight  = 400
	chartPadding = 50
)

// generateBarChartSVG draws one bar per label scaled to the largest value.
func generateBarChartSVG(title string, labels []string, values []uint64, color string) string {
	var maxVal uint64
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}

	barWidth := (chartWidth - 2*chartPadding) / max(len(labels), 1)
	maxBarHeight := chartHeight - 2*chartPadding
	baseline := chartHeight - chartPadding

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`, chartWidth, chartHeight, chartWidth, chartHeight)
	sb.WriteString(`<rect width="100%" height="100%" fill="#1a1a1a" />`)
	fmt.Fprintf(&sb, `<text x="%d" y="30" fill="white" font-family="Arial" font-size="20" text-anchor="middle">%s</text>`, chartWidth/2, html.EscapeString(title))

	for i, val := range values {
		barHeight := 0
		if maxVal > 0 {
			barHeight = int(val * uint64(maxBarHeight) / maxVal)
		}
		x := chartPadding + i*barWidth
		y := baseline - barHeight
		mid := x + barWidth/2

		fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" rx="4" />`, x+5, y, barWidth-10, barHeight, color)
		fmt.Fprintf(&sb, `<text x="%d" y="%d" fill="white" font-family="Arial" font-size="12" text-anchor="end" transform="rotate(-45 %d %d)">%s</text>`,
			mid, baseline+20, mid, baseline+20, html.EscapeString(labels[i]))
		fmt.Fprintf(&sb, `<text x="%d" y="%d" fill="white" font-family="Arial" font-size="10" text-anchor="middle">%d</text>`, mid, y-5, val)
	}

	fmt.Fprintf(&sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="white" stroke-width="2" />`, chartPadding, baseline, chartWidth-chartPadding, baseline)
	sb.WriteString(`</svg>`)
	return sb.String()
}
