package apiclient

import (
	"context"
	"time"

	"homeinsight-analyzer/internal/models"
	"homeinsight-analyzer/pkg/cache"
	"homeinsight-analyzer/pkg/metrics"
)

// CachedClient is a read-through Redis cache in front of a Client.
// Cache failures are deliberately non-fatal: a miss or a broken cache
// degrades to the underlying request, never to an error the user sees.
type CachedClient struct {
	client *Client
	ttl    time.Duration
}

func NewCachedClient(client *Client, ttl time.Duration) *CachedClient {
	return &CachedClient{client: client, ttl: ttl}
}

func (c *CachedClient) DocsURL() string {
	return c.client.DocsURL()
}

func (c *CachedClient) StateRecommendations(ctx context.Context, state string) ([]models.RankedListing, error) {
	key := cache.RecommendationsKey(state)
	var cached []models.RankedListing
	if err := cache.Get(ctx, key, &cached); err == nil {
		metrics.CacheHitsTotal.Inc()
		return cached, nil
	}
	metrics.CacheMissesTotal.Inc()

	listings, err := c.client.StateRecommendations(ctx, state)
	if err != nil {
		return nil, err
	}
	_ = cache.Set(ctx, key, listings, c.ttl)
	return listings, nil
}

func (c *CachedClient) ZipAnalysis(ctx context.Context, zip string) (*models.ZipAnalysis, error) {
	key := cache.AnalysisKey(zip)
	var cached models.ZipAnalysis
	if err := cache.Get(ctx, key, &cached); err == nil {
		metrics.CacheHitsTotal.Inc()
		return &cached, nil
	}
	metrics.CacheMissesTotal.Inc()

	analysis, err := c.client.ZipAnalysis(ctx, zip)
	if err != nil {
		return nil, err
	}
	_ = cache.Set(ctx, key, analysis, c.ttl)
	return analysis, nil
}

func (c *CachedClient) MsiAnalysis(ctx context.Context, state string) ([]models.MsiPoint, error) {
	key := cache.MsiKey(state)
	var cached []models.MsiPoint
	if err := cache.Get(ctx, key, &cached); err == nil {
		metrics.CacheHitsTotal.Inc()
		return cached, nil
	}
	metrics.CacheMissesTotal.Inc()

	points, err := c.client.MsiAnalysis(ctx, state)
	if err != nil {
		return nil, err
	}
	_ = cache.Set(ctx, key, points, c.ttl)
	return points, nil
}

func (c *CachedClient) ModelEvaluation(ctx context.Context) ([]models.EvaluationChart, error) {
	key := cache.EvaluationKey()
	var cached []models.EvaluationChart
	if err := cache.Get(ctx, key, &cached); err == nil {
		metrics.CacheHitsTotal.Inc()
		return cached, nil
	}
	metrics.CacheMissesTotal.Inc()

	charts, err := c.client.ModelEvaluation(ctx)
	if err != nil {
		return nil, err
	}
	_ = cache.Set(ctx, key, charts, c.ttl)
	return charts, nil
}
