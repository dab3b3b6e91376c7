package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homeinsight-analyzer/internal/devserver"
	"homeinsight-analyzer/pkg/config"
	"homeinsight-analyzer/pkg/logger"
	"homeinsight-analyzer/pkg/metrics"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, relying on system environment variables: %v", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(os.Stdout, cfg.Log.Level)
	metrics.Init()

	store, err := devserver.LoadStore(cfg.Fixtures.Path)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to load fixtures: %v", err)
		os.Exit(1)
	}

	limiter := devserver.NewRateLimiter(rate.Limit(100/60.0), 10)
	go limiter.Cleanup()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: devserver.NewRouter(store, limiter),
	}

	go func() {
		logger.GlobalLogger.Printf("Starting stub server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.GlobalLogger.Errorf("Failed to start server: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.GlobalLogger.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.GlobalLogger.Errorf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}
	logger.GlobalLogger.Println("Server exited")
}
