package models

// Results is the tagged variant of a successful search: a ranked list in
// state mode, a single analysis in ZIP mode. Consumers switch on the
// concrete type so the two shapes can never be confused.
type Results interface {
	isResults()
}

// StateResults holds state-mode recommendations, already ordered by
// ranking score. Unique key within the set is the ZIP code.
type StateResults struct {
	Listings []RankedListing
}

// ZipResult holds a ZIP-mode analysis.
type ZipResult struct {
	Analysis *ZipAnalysis
}

func (StateResults) isResults() {}
func (ZipResult) isResults()    {}
