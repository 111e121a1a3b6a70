// ABOUTME: Main entry point for the local rank tracking API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"localrank-app-api/api"
	"localrank-app-api/api/handlers"
	"localrank-app-api/core/interfaces"
	"localrank-app-api/core/rank"
	"localrank-app-api/core/report"
	"localrank-app-api/core/scan"
	"localrank-app-api/infrastructure/cache/memory"
	"localrank-app-api/infrastructure/cache/redis"
	"localrank-app-api/infrastructure/cache/sqlite"
	stdhttp "localrank-app-api/infrastructure/http/standard"
	"localrank-app-api/infrastructure/logger/logruslog"
	"localrank-app-api/infrastructure/search/serpapi"
	"localrank-app-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslog.New(os.Stdout, cfg.LogLevel)
	logger.Info("Starting local rank API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"live_mode":  cfg.Search.APIKey != "",
	})

	// Load the tracked portfolio
	portfolio, err := config.LoadPortfolio(cfg.PortfolioPath)
	if err != nil {
		log.Fatalf("Failed to load portfolio: %v", err)
	}
	logger.Info("Portfolio loaded", map[string]interface{}{
		"locations": len(portfolio.Locations),
		"keywords":  len(portfolio.Keywords),
	})

	// Create cache
	cache := buildCache(cfg, logger)

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create services
	searchClient := serpapi.NewClientWithLocale(deps, cfg.Search.APIKey, cfg.Search.Language, cfg.Search.Country)
	scanService := scan.NewService(deps, searchClient, scan.Options{
		TTL:        cfg.Scan.TTL,
		BatchTTL:   cfg.Scan.BatchTTL,
		FailureTTL: cfg.Scan.FailureTTL,
		Limiter:    rate.NewLimiter(rate.Every(cfg.Scan.RequestInterval), 1),
	})
	tracker := rank.NewTracker(scanService, searchClient, logger)
	reportService := report.NewService(scanService, logger, portfolio.Keywords[0])

	// Create router with middleware
	router := api.NewRouter(api.APIConfig{
		Logger:     logger,
		RateLimit:  100,
		RateWindow: time.Minute,
	}, api.Handlers{
		Summary: handlers.NewSummaryHandler(reportService, portfolio.Locations, logger),
		Scan:    handlers.NewScanHandler(reportService, portfolio.Locations, logger),
		Ranks:   handlers.NewRanksHandler(tracker, portfolio.Locations, portfolio.Keywords, logger),
	})

	// Create HTTP server. Write timeout must cover a full rank-tracking
	// batch, which calls the provider once per uncached pair.
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// buildCache creates the configured cache backend, falling back to memory
// when a remote or persistent backend cannot be reached.
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(cfg.Scan.TTL)
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(cfg.Scan.TTL)
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache
	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache(cfg.Scan.TTL)
	}
}
