package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fakturo/bankrecon/internal/adapter/http/handler"
	"github.com/fakturo/bankrecon/internal/adapter/http/middleware"
	"github.com/fakturo/bankrecon/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	StatementHandler   *handler.StatementHandler
	TransactionHandler *handler.TransactionHandler
	HealthHandler      *handler.HealthHandler
	IdempotencyStore   usecase.IdempotencyStore
	RateLimiter        *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Tenant)

		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Statements
		r.Route("/statements", func(r chi.Router) {
			r.Post("/import", cfg.StatementHandler.Import)
			r.Get("/", cfg.StatementHandler.List)
			r.Get("/{id}", cfg.StatementHandler.Get)
			r.Post("/{id}/match", cfg.StatementHandler.AutoMatch)
		})

		// Transactions
		r.Route("/transactions", func(r chi.Router) {
			r.Get("/unmatched", cfg.TransactionHandler.ListUnmatched)
			r.Post("/{id}/match", cfg.TransactionHandler.Match)
			r.Post("/{id}/payment", cfg.TransactionHandler.CreatePayment)
		})
	})

	return r
}
