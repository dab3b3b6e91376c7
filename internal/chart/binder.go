package chart

import (
	"fmt"

	"homeinsight-analyzer/internal/models"
)

// Display contract owned by the rendering layer: the investment score
// axis is fixed to [0,1] and every x axis starts at zero with no fixed
// maximum.
const (
	YMin = 0.0
	YMax = 1.0
	XMin = 0.0
)

// Point is one derived scatter point. The MSA metadata rides along for
// tooltip display regardless of which metric is on the x axis.
type Point struct {
	X             float64
	Y             float64
	Msi           string
	MarketHeat    float64
	DaysToPending float64
	PriceCuts     float64
}

// Series is one metric-vs-investment-score projection of the MSA set.
type Series struct {
	Label       string
	XMetricName string
	Points      []Point
}

// BindSeries derives the three fixed correlation series from a flat MSA
// record set. Each series has one point per input row and all three
// share the same y value (the investment score) at the same index.
func BindSeries(points []models.MsiPoint) []Series {
	series := []Series{
		{Label: "Price-to-Rent vs Investment Score", XMetricName: "Price-to-Rent Ratio"},
		{Label: "Market Heat vs Investment Score", XMetricName: "Market Heat"},
		{Label: "Days to Pending vs Investment Score", XMetricName: "Days to Pending"},
	}

	for i := range series {
		series[i].Points = make([]Point, 0, len(points))
	}

	for _, p := range points {
		meta := Point{
			Y:             p.InvestmentScore,
			Msi:           p.MsiName,
			MarketHeat:    p.MarketHeat,
			DaysToPending: p.DaysToPending,
			PriceCuts:     p.PriceCutsPercent,
		}

		pr := meta
		pr.X = p.PriceToRentRatio
		series[0].Points = append(series[0].Points, pr)

		heat := meta
		heat.X = p.MarketHeat
		series[1].Points = append(series[1].Points, heat)

		pending := meta
		pending.X = p.DaysToPending
		series[2].Points = append(series[2].Points, pending)
	}

	return series
}

// TooltipLines renders the inspection text shown for a single point.
func TooltipLines(p Point) []string {
	return []string{
		fmt.Sprintf("MSI: %s", p.Msi),
		fmt.Sprintf("Investment Score: %.2f", p.Y),
		fmt.Sprintf("Market Heat: %.2f", p.MarketHeat),
		fmt.Sprintf("Days to Pending: %.0f", p.DaysToPending),
		fmt.Sprintf("Price Cuts %%: %.2f", p.PriceCuts),
	}
}
