package apiclient

import (
	"context"

	"homeinsight-analyzer/internal/models"
)

// API is the full backend surface, satisfied by both the plain and the
// cached client so callers can wire either.
type API interface {
	StateRecommendations(ctx context.Context, state string) ([]models.RankedListing, error)
	ZipAnalysis(ctx context.Context, zip string) (*models.ZipAnalysis, error)
	MsiAnalysis(ctx context.Context, state string) ([]models.MsiPoint, error)
	ModelEvaluation(ctx context.Context) ([]models.EvaluationChart, error)
	DocsURL() string
}

var (
	_ API = (*Client)(nil)
	_ API = (*CachedClient)(nil)
)
