// ABOUTME: API router assembly with CORS, logging, and rate limit middleware
// ABOUTME: Registers the summary, scan, and ranks routes on a standard mux

package api

import (
	"net/http"
	"time"

	"github.com/rs/cors"

	"localrank-app-api/api/handlers"
	"localrank-app-api/api/middleware"
	"localrank-app-api/core/interfaces"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	// Logger receives request log entries; nil disables request logging
	Logger interfaces.Logger

	// RateLimit is the allowed requests per window, per client IP.
	// Zero disables rate limiting.
	RateLimit int

	// RateWindow is the rate limit window
	RateWindow time.Duration
}

// Handlers collects the route handlers registered on the router.
type Handlers struct {
	Summary *handlers.SummaryHandler
	Scan    *handlers.ScanHandler
	Ranks   *handlers.RanksHandler
}

// NewRouter builds the HTTP handler chain: CORS outermost, then request
// logging, then rate limiting, then the route mux.
func NewRouter(cfg APIConfig, h Handlers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/summary", h.Summary.GetSummary)
	mux.HandleFunc("GET /api/locations/{name}/scan", h.Scan.GetScan)
	mux.HandleFunc("POST /api/ranks", h.Ranks.RunRanks)
	mux.HandleFunc("GET /health", healthCheck)

	var handler http.Handler = mux

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		handler = middleware.RateLimitMiddleware(limiter)(handler)
	}

	if cfg.Logger != nil {
		handler = middleware.RequestLoggingMiddleware(cfg.Logger)(handler)
	}

	handler = cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler(handler)

	return handler
}

// healthCheck reports liveness.
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
