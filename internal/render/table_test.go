package render

import (
	"strings"
	"testing"

	"homeinsight-analyzer/internal/models"
	"homeinsight-analyzer/internal/paginate"

	"github.com/stretchr/testify/assert"
)

func TestRenderListings(t *testing.T) {
	listings := []models.RankedListing{
		{ZipCode: "02108", City: "Boston", State: "MA", RegionID: "394514", MedianHomeValue: 785000, MedianRent: 3200, InvestmentScore: 0.85, MarketHeat: 84.1},
	}
	page := paginate.Paginate(listings, 1, paginate.PageSize)

	var buf strings.Builder
	RenderListings(&buf, page)
	out := buf.String()

	assert.Contains(t, out, "Metropolitan Statistical Area")
	assert.Contains(t, out, "02108")
	assert.Contains(t, out, "$785,000")
	assert.Contains(t, out, "85.0%")
	assert.Contains(t, out, "Page 1 of 1")
}

func TestRenderListingsRankContinuesAcrossPages(t *testing.T) {
	listings := make([]models.RankedListing, 25)
	for i := range listings {
		listings[i] = models.RankedListing{ZipCode: "02108", City: "Boston"}
	}
	page := paginate.Paginate(listings, 2, paginate.PageSize)

	var buf strings.Builder
	RenderListings(&buf, page)
	out := buf.String()

	assert.Contains(t, out, "21 ")
	assert.Contains(t, out, "Page 2 of 2")
}

func TestRenderAnalysis(t *testing.T) {
	a := &models.ZipAnalysis{
		City:    "Boston",
		State:   "MA",
		ZipCode: "02108",
		MsaName: "Boston-Cambridge-Newton, MA-NH",
		Scores:  models.ZipScores{InvestmentScore: 0.853, RankingScore: 92.5},
		Metrics: models.ZipMetrics{MedianHomeValue: 785000, MedianRent: 3200, PriceToRent: 20.45, DaysPending: 14, PriceCutsPercent: 8.0, MarketHeat: 84.1},
		Percentiles: map[string]float64{
			"median_home_value_percentile": 91,
		},
		NearbyZips: []models.NearbyCandidate{{ZipCode: "02109", City: "Boston", State: "MA"}},
	}

	var buf strings.Builder
	RenderAnalysis(&buf, a)
	out := buf.String()

	assert.Contains(t, out, "Boston, MA")
	assert.Contains(t, out, "Investment Score: 85.3%")
	assert.Contains(t, out, "Ranking Score: 92.5")
	assert.Contains(t, out, "$785,000")
	assert.Contains(t, out, "91th")
	assert.Contains(t, out, "02109 (Boston, MA)")
}

func TestRenderAnalysisOmitsOptionalSections(t *testing.T) {
	a := &models.ZipAnalysis{City: "Boston", State: "MA"}

	var buf strings.Builder
	RenderAnalysis(&buf, a)
	out := buf.String()

	assert.NotContains(t, out, "State Percentiles")
	assert.NotContains(t, out, "Nearby ZIP codes")
}

func TestRenderError(t *testing.T) {
	var buf strings.Builder
	RenderError(&buf, "An error occurred")
	assert.Contains(t, buf.String(), "Error: An error occurred")
}
