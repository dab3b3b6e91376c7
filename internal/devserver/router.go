package devserver

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the stub server's gin engine: the four fixture-backed
// API routes plus health and metrics.
func NewRouter(store *Store, limiter *RateLimiter) *gin.Engine {
	r := gin.New()

	r.Use(setupCORS())
	r.Use(MetricsMiddleware())
	r.Use(LoggingMiddleware())
	if limiter != nil {
		r.Use(RateLimitMiddleware(limiter))
	}
	r.Use(gin.Recovery())

	handlers := NewHandlers(store)

	api := r.Group("/api")
	{
		api.GET("/recommendations/:state", handlers.GetRecommendations)
		api.GET("/analysis/:zip", handlers.GetAnalysis)
		api.GET("/msi-analysis/:state", handlers.GetMsiAnalysis)
		api.GET("/model-evaluation", handlers.GetModelEvaluation)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func setupCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	return cors.New(corsConfig)
}
