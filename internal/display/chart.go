package display

import (
	"strings"

	"github.com/kvbadhan/timeinmarket/internal/sip"
)

// RenderChart draws the valuation series as a fixed-size ASCII chart:
// portfolio value as solid blocks, cumulative cash invested as dots. The
// output is plain text; styling happens at the call site.
func RenderChart(series []sip.ValuationPoint, width, height int) string {
	if len(series) == 0 || width < 2 || height < 2 {
		return ""
	}

	values := make([]float64, width)
	invested := make([]float64, width)
	maxY := 0.0
	for col := 0; col < width; col++ {
		// Sample the series at evenly spaced points.
		idx := col * (len(series) - 1) / max(width-1, 1)
		p := series[idx]
		values[col] = p.PortfolioValue.InexactFloat64()
		invested[col] = p.TotalInvested.InexactFloat64()
		if values[col] > maxY {
			maxY = values[col]
		}
		if invested[col] > maxY {
			maxY = invested[col]
		}
	}
	if maxY == 0 {
		maxY = 1
	}

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}

	// Row 0 is the top; scale both series onto the grid, invested drawn
	// first so the value marker wins when they overlap.
	plot := func(data []float64, marker rune) {
		for col := 0; col < width; col++ {
			r := height - 1 - int(data[col]/maxY*float64(height-1)+0.5)
			if r < 0 {
				r = 0
			}
			if r > height-1 {
				r = height - 1
			}
			grid[r][col] = marker
		}
	}
	plot(invested, '·')
	plot(values, '█')

	var b strings.Builder
	first := series[0]
	last := series[len(series)-1]
	for r := 0; r < height; r++ {
		b.WriteString("   ")
		b.WriteString(string(grid[r]))
		b.WriteString("\n")
	}
	b.WriteString("   ")
	b.WriteString(first.Date.Format("2006-01-02"))
	pad := width - 2*len("2006-01-02")
	if pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(last.Date.Format("2006-01-02"))
	return b.String()
}
