package render

import (
	"fmt"
	"io"
	"strings"

	"homeinsight-analyzer/internal/chart"
)

const (
	plotRows = 12
	plotCols = 56
)

// RenderScatter draws one correlation series as an ASCII scatter plot.
// The y axis is pinned to the investment score domain [0,1]; the x axis
// starts at zero and scales to the largest observed value.
func RenderScatter(w io.Writer, s chart.Series) {
	headerColor.Fprintln(w, s.Label)

	if len(s.Points) == 0 {
		fmt.Fprintln(w, "  (no MSA data)")
		return
	}

	xMax := chart.XMin
	for _, p := range s.Points {
		if p.X > xMax {
			xMax = p.X
		}
	}
	if xMax == chart.XMin {
		xMax = 1
	}

	grid := make([][]rune, plotRows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", plotCols))
	}

	for _, p := range s.Points {
		col := int((p.X - chart.XMin) / (xMax - chart.XMin) * float64(plotCols-1))
		row := int((chart.YMax - p.Y) / (chart.YMax - chart.YMin) * float64(plotRows-1))
		if col < 0 || col >= plotCols || row < 0 || row >= plotRows {
			continue
		}
		grid[row][col] = '*'
	}

	for i, row := range grid {
		yLabel := "    "
		switch i {
		case 0:
			yLabel = fmt.Sprintf("%.1f", chart.YMax)
		case plotRows - 1:
			yLabel = fmt.Sprintf("%.1f", chart.YMin)
		}
		fmt.Fprintf(w, "%4s |%s\n", yLabel, string(row))
	}
	fmt.Fprintf(w, "     +%s\n", strings.Repeat("-", plotCols))
	fmt.Fprintf(w, "      %d%*s\n", int(chart.XMin), plotCols-1, fmt.Sprintf("%.0f", xMax))
	fmt.Fprintf(w, "      %s\n\n", s.XMetricName)
}
