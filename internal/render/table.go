package render

import (
	"fmt"
	"io"

	"homeinsight-analyzer/internal/models"
	"homeinsight-analyzer/internal/paginate"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// strongScore marks listings worth highlighting, the top band of the
// classifier output.
const strongScore = 0.7

var money = message.NewPrinter(language.AmericanEnglish)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	strongColor = color.New(color.FgGreen)
	errColor    = color.New(color.FgRed, color.Bold)
	noteColor   = color.New(color.FgYellow)
)

// RenderListings writes one page of ranked listings as a fixed-width
// table. Rank numbering continues across pages. Investment scores are
// shown as percentages; currency formatting here is display-only and
// never appears in CSV exports.
func RenderListings(w io.Writer, page paginate.Page[models.RankedListing]) {
	noteColor.Fprintln(w, "All metrics are provided at the Metropolitan Statistical Area (MSA) level;")
	noteColor.Fprintln(w, "nearby ZIP codes in the same metro area share similar values.")
	fmt.Fprintln(w)

	headerColor.Fprintf(w, "%-5s %-8s %-8s %-20s %14s %12s %8s %7s\n",
		"Rank", "MSA", "ZIP", "City", "Home Value", "Rent", "Score", "Heat")

	startRank := (page.Index - 1) * paginate.PageSize
	for i, item := range page.Items {
		line := fmt.Sprintf("%-5d %-8s %-8s %-20.20s %14s %12s %7.1f%% %7.1f",
			startRank+i+1,
			item.RegionID,
			item.ZipCode,
			item.City,
			money.Sprintf("$%.0f", item.MedianHomeValue),
			money.Sprintf("$%.0f", item.MedianRent),
			item.InvestmentScore*100,
			item.MarketHeat,
		)
		if item.InvestmentScore > strongScore {
			strongColor.Fprintln(w, line)
		} else {
			fmt.Fprintln(w, line)
		}
	}

	fmt.Fprintf(w, "\nPage %d of %d\n", page.Index, page.TotalPages)
}

// RenderAnalysis writes the single-location view for a ZIP search.
func RenderAnalysis(w io.Writer, a *models.ZipAnalysis) {
	headerColor.Fprintf(w, "%s, %s", a.City, a.State)
	if a.MsaName != "" {
		fmt.Fprintf(w, "  (%s)", a.MsaName)
	}
	fmt.Fprintln(w)

	scoreLine := fmt.Sprintf("Investment Score: %.1f%%", a.Scores.InvestmentScore*100)
	if a.Scores.InvestmentScore > strongScore {
		strongColor.Fprintln(w, scoreLine)
	} else {
		fmt.Fprintln(w, scoreLine)
	}
	fmt.Fprintf(w, "Ranking Score: %.1f\n\n", a.Scores.RankingScore)

	headerColor.Fprintln(w, "Market Metrics")
	fmt.Fprintf(w, "  %-22s %s\n", "Median Home Value", money.Sprintf("$%.0f", a.Metrics.MedianHomeValue))
	fmt.Fprintf(w, "  %-22s %s\n", "Monthly Rent", money.Sprintf("$%.0f", a.Metrics.MedianRent))
	fmt.Fprintf(w, "  %-22s %.2f\n", "Price-to-Rent Ratio", a.Metrics.PriceToRent)
	fmt.Fprintf(w, "  %-22s %.0f\n", "Days to Pending", a.Metrics.DaysPending)
	fmt.Fprintf(w, "  %-22s %.1f%%\n", "Price Cuts", a.Metrics.PriceCutsPercent)
	fmt.Fprintf(w, "  %-22s %.1f\n", "Market Heat", a.Metrics.MarketHeat)

	if len(a.Percentiles) > 0 {
		fmt.Fprintln(w)
		headerColor.Fprintln(w, "State Percentiles")
		for _, metric := range []string{"median_home_value", "median_rent", "price_to_rent", "days_pending", "price_cuts_percent", "market_heat"} {
			if v, ok := a.Percentiles[metric+"_percentile"]; ok {
				fmt.Fprintf(w, "  %-22s %.0fth\n", metric, v)
			}
		}
	}

	if len(a.NearbyZips) > 0 {
		fmt.Fprintln(w)
		noteColor.Fprint(w, "Nearby ZIP codes with data: ")
		for i, zip := range a.NearbyZips {
			if i > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "%s (%s, %s)", zip.ZipCode, zip.City, zip.State)
		}
		fmt.Fprintln(w)
	}
}

// RenderError writes a terminal error message.
func RenderError(w io.Writer, msg string) {
	errColor.Fprintf(w, "Error: %s\n", msg)
}
