package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"homeinsight-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCSVHeaderOrder(t *testing.T) {
	records := []Record{
		{{Key: "b", Value: "one"}, {Key: "a", Value: "two"}},
		{{Key: "b", Value: "three"}, {Key: "a", Value: "four"}},
	}

	out := ToCSV(records)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "b,a", lines[0])
	assert.Equal(t, "one,two", lines[1])
}

func TestToCSVNumbersPassThrough(t *testing.T) {
	records := []Record{{
		{Key: "value", Value: 785000.0},
		{Key: "score", Value: 0.81},
		{Key: "count", Value: 42},
	}}

	lines := strings.Split(ToCSV(records), "\n")
	assert.Equal(t, "785000,0.81,42", lines[1])
}

func TestToCSVQuoting(t *testing.T) {
	records := []Record{{
		{Key: "city", Value: "Boston, MA"},
		{Key: "note", Value: `said "hello"`},
		{Key: "both", Value: `a "quoted", phrase`},
	}}

	lines := strings.Split(ToCSV(records), "\n")
	// Commas and quotes both force quoting; internal quotes are doubled.
	assert.Equal(t, `"Boston, MA","said ""hello""","a ""quoted"", phrase"`, lines[1])
}

func TestToCSVRoundTrip(t *testing.T) {
	values := [][]string{
		{"Boston, MA", `said "hi"`, "plain"},
		{`"leading quote`, "trailing, comma,", "x"},
	}
	records := make([]Record, 0, len(values))
	for _, row := range values {
		records = append(records, Record{
			{Key: "a", Value: row[0]},
			{Key: "b", Value: row[1]},
			{Key: "c", Value: row[2]},
		})
	}

	reader := csv.NewReader(strings.NewReader(ToCSV(records)))
	parsed, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, len(values)+1)
	for i, row := range values {
		assert.Equal(t, row, parsed[i+1])
	}
}

func TestToCSVNoTrailingNewline(t *testing.T) {
	out := ToCSV([]Record{{{Key: "a", Value: "x"}}})
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestToCSVEmpty(t *testing.T) {
	assert.Equal(t, "", ToCSV(nil))
}

func TestListingRecordsOrder(t *testing.T) {
	listings := []models.RankedListing{{
		ZipCode:         "02108",
		City:            "Boston",
		State:           "MA",
		RegionID:        "394514",
		MsaName:         "Boston-Cambridge-Newton",
		MedianHomeValue: 785000,
		MedianRent:      3250,
		InvestmentScore: 0.81,
		RankingScore:    92.4,
	}}

	out := ToCSV(ListingRecords(listings))
	lines := strings.Split(out, "\n")
	assert.Equal(t,
		"zip_code,city,state,region_id,msa_name,median_home_value,median_rent,days_pending,price_cuts_percent,market_heat,price_to_rent,investment_score,ranking_score",
		lines[0])
	assert.Contains(t, lines[1], "02108,Boston,MA")
	// Raw wire values only: no currency symbols or percent signs.
	assert.NotContains(t, lines[1], "$")
	assert.NotContains(t, lines[1], "%")
}

func TestAnalysisRecordsFormattedScores(t *testing.T) {
	analysis := &models.ZipAnalysis{
		City:  "Boston",
		State: "MA",
		Scores: models.ZipScores{
			InvestmentScore: 0.853,
			RankingScore:    92.46,
		},
		Metrics: models.ZipMetrics{MedianHomeValue: 785000},
	}

	records := AnalysisRecords(analysis)
	require.Len(t, records, 1)

	lines := strings.Split(ToCSV(records), "\n")
	assert.Contains(t, lines[1], "85.3%")
	assert.Contains(t, lines[1], "92.5")
	assert.Contains(t, lines[1], "785000")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "real_estate_data_MA.csv", Filename("MA"))
	assert.Equal(t, "real_estate_data_02108.csv", Filename("02108"))
}

func TestDownload(t *testing.T) {
	dir := t.TempDir()

	path, err := Download("a,b\n1,2", "real_estate_data_MA.csv", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "real_estate_data_MA.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2", string(data))

	// The temporary handle must be released: only the artifact remains.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDownloadCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	path, err := Download("x", "out.csv", dir)
	require.NoError(t, err)
	assert.FileExists(t, path)
}
