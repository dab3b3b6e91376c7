package export

import (
	"fmt"

	"homeinsight-analyzer/internal/models"
)

// Filename builds the artifact name for a state or ZIP export.
func Filename(code string) string {
	return fmt.Sprintf("real_estate_data_%s.csv", code)
}

// ListingRecords projects state-mode listings into export records,
// keeping the raw wire values and field order. Display formatting
// (currency symbols, percentages) is a table concern and never reaches
// the export.
func ListingRecords(listings []models.RankedListing) []Record {
	records := make([]Record, 0, len(listings))
	for _, l := range listings {
		records = append(records, Record{
			{Key: "zip_code", Value: l.ZipCode},
			{Key: "city", Value: l.City},
			{Key: "state", Value: l.State},
			{Key: "region_id", Value: l.RegionID},
			{Key: "msa_name", Value: l.MsaName},
			{Key: "median_home_value", Value: l.MedianHomeValue},
			{Key: "median_rent", Value: l.MedianRent},
			{Key: "days_pending", Value: l.DaysPending},
			{Key: "price_cuts_percent", Value: l.PriceCutsPercent},
			{Key: "market_heat", Value: l.MarketHeat},
			{Key: "price_to_rent", Value: l.PriceToRent},
			{Key: "investment_score", Value: l.InvestmentScore},
			{Key: "ranking_score", Value: l.RankingScore},
		})
	}
	return records
}

// AnalysisRecords projects a single ZIP analysis into a one-element
// record set. Scores are exported pre-formatted, matching the artifact
// users see on screen for a single location.
func AnalysisRecords(a *models.ZipAnalysis) []Record {
	return []Record{{
		{Key: "city", Value: a.City},
		{Key: "state", Value: a.State},
		{Key: "investment_score", Value: fmt.Sprintf("%.1f%%", a.Scores.InvestmentScore*100)},
		{Key: "ranking_score", Value: fmt.Sprintf("%.1f", a.Scores.RankingScore)},
		{Key: "median_home_value", Value: a.Metrics.MedianHomeValue},
		{Key: "median_rent", Value: a.Metrics.MedianRent},
		{Key: "price_to_rent", Value: a.Metrics.PriceToRent},
		{Key: "days_pending", Value: a.Metrics.DaysPending},
		{Key: "price_cuts_percent", Value: a.Metrics.PriceCutsPercent},
		{Key: "market_heat", Value: a.Metrics.MarketHeat},
	}}
}
