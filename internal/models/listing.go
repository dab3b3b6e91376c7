package models

// RankedListing is one scored ZIP code row as returned by the
// recommendations endpoint, ordered by ranking score within a state.
// All metric values are computed at the MSA level, so nearby ZIP codes
// in the same metro area share them.
type RankedListing struct {
	ZipCode          string  `json:"zip_code" yaml:"zip_code"`
	City             string  `json:"city" yaml:"city"`
	State            string  `json:"state" yaml:"state"`
	RegionID         string  `json:"region_id" yaml:"region_id"`
	MsaName          string  `json:"msa_name" yaml:"msa_name"`
	MedianHomeValue  float64 `json:"median_home_value" yaml:"median_home_value"`
	MedianRent       float64 `json:"median_rent" yaml:"median_rent"`
	DaysPending      float64 `json:"days_pending" yaml:"days_pending"`
	PriceCutsPercent float64 `json:"price_cuts_percent" yaml:"price_cuts_percent"`
	MarketHeat       float64 `json:"market_heat" yaml:"market_heat"`
	PriceToRent      float64 `json:"price_to_rent" yaml:"price_to_rent"`
	InvestmentScore  float64 `json:"investment_score" yaml:"investment_score"`
	RankingScore     float64 `json:"ranking_score" yaml:"ranking_score"`
}

// ZipScores holds the two model outputs for a single ZIP code.
type ZipScores struct {
	InvestmentScore float64 `json:"investment_score" yaml:"investment_score"`
	RankingScore    float64 `json:"ranking_score" yaml:"ranking_score"`
}

// ZipMetrics holds the market metrics for a single ZIP code.
type ZipMetrics struct {
	MedianHomeValue  float64 `json:"median_home_value" yaml:"median_home_value"`
	MedianRent       float64 `json:"median_rent" yaml:"median_rent"`
	PriceToRent      float64 `json:"price_to_rent" yaml:"price_to_rent"`
	DaysPending      float64 `json:"days_pending" yaml:"days_pending"`
	PriceCutsPercent float64 `json:"price_cuts_percent" yaml:"price_cuts_percent"`
	MarketHeat       float64 `json:"market_heat" yaml:"market_heat"`
}

// ZipAnalysis is the single-record analog of RankedListing returned by
// the analysis endpoint. Percentiles and NearbyZips are optional and
// decode to empty values when the backend omits them.
type ZipAnalysis struct {
	City        string             `json:"city" yaml:"city"`
	State       string             `json:"state" yaml:"state"`
	ZipCode     string             `json:"zip_code" yaml:"zip_code"`
	MsaName     string             `json:"msa_name" yaml:"msa_name"`
	Scores      ZipScores          `json:"scores" yaml:"scores"`
	Metrics     ZipMetrics         `json:"metrics" yaml:"metrics"`
	Percentiles map[string]float64 `json:"percentiles,omitempty" yaml:"percentiles"`
	NearbyZips  []NearbyCandidate  `json:"nearby_zips,omitempty" yaml:"nearby_zips"`
}

// MsiPoint is one Metropolitan Statistical Area row used for chart binding.
type MsiPoint struct {
	MsiName          string  `json:"msi_name" yaml:"msi_name"`
	InvestmentScore  float64 `json:"investment_score" yaml:"investment_score"`
	PriceToRentRatio float64 `json:"price_to_rent_ratio" yaml:"price_to_rent_ratio"`
	MarketHeat       float64 `json:"market_heat" yaml:"market_heat"`
	DaysToPending    float64 `json:"days_to_pending" yaml:"days_to_pending"`
	PriceCutsPercent float64 `json:"price_cuts_percent" yaml:"price_cuts_percent"`
}

// NearbyCandidate identifies a ZIP code suggested after a failed lookup.
type NearbyCandidate struct {
	ZipCode string `json:"zip_code" yaml:"zip_code"`
	City    string `json:"city" yaml:"city"`
	State   string `json:"state" yaml:"state"`
}

// EvaluationChart is one precomputed model evaluation artifact.
type EvaluationChart struct {
	Image       string `json:"image" yaml:"image"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}
