package main

import (
	"time"

	"homeinsight-analyzer/internal/search"
	"homeinsight-analyzer/pkg/apiclient"
	"homeinsight-analyzer/pkg/cache"
	"homeinsight-analyzer/pkg/config"
	"homeinsight-analyzer/pkg/logger"
	"homeinsight-analyzer/pkg/metrics"
)

// App wires the configuration, API client and search controller.
type App struct {
	Config     *config.Config
	Client     apiclient.API
	Controller *search.Controller

	redisEnabled bool
}

func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	metrics.Init()
	app.initializeClient()
	app.Controller = search.NewController(app.Client)

	return app
}

// initializeClient builds the API client, wrapped in the Redis response
// cache when one is configured. A cache that fails to connect is skipped
// rather than fatal: the analyzer still works, just uncached.
func (a *App) initializeClient() {
	timeout := time.Duration(a.Config.API.TimeoutSeconds) * time.Second
	client := apiclient.NewClient(a.Config.API.BaseURL, timeout)

	if !a.Config.Redis.Enabled {
		a.Client = client
		return
	}

	if err := cache.InitRedis(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Redis cache disabled: %v", err)
		a.Client = client
		return
	}

	a.redisEnabled = true
	ttl := time.Duration(a.Config.Redis.TTLSeconds) * time.Second
	a.Client = apiclient.NewCachedClient(client, ttl)
}

func (a *App) cleanup() {
	if a.redisEnabled {
		cache.CloseRedis()
	}
}
