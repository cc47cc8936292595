package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ledgerguard/ledgerguard/internal/adapter/http/handler"
	"github.com/ledgerguard/ledgerguard/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler *handler.AccountHandler
	EntryHandler   *handler.EntryHandler
	ReportHandler  *handler.ReportHandler
	HealthHandler  *handler.HealthHandler
	Logger         zerolog.Logger

	// RateLimit is requests per second per client IP; zero disables limiting.
	RateLimit      float64
	RateLimitBurst int
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.NewRecoveryMiddleware(cfg.Logger).Wrap)
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitBurst)
		r.Use(limiter.Limit)
	}

	// Probes and metrics
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/suggest-code", cfg.AccountHandler.SuggestCode)
			r.Post("/validate-code", cfg.AccountHandler.ValidateCode)
		})

		r.Route("/entries", func(r chi.Router) {
			r.Post("/validate", cfg.EntryHandler.Validate)
		})

		r.Route("/chart", func(r chi.Router) {
			r.Get("/tree", cfg.ReportHandler.Tree)
			r.Get("/audit", cfg.ReportHandler.Audit)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/balance", cfg.ReportHandler.Balance)
			r.Get("/journal", cfg.ReportHandler.Journal)
			r.Get("/ledger", cfg.ReportHandler.Ledger)
		})
	})

	return r
}
