package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/courtside/statline/internal/api/handler"
	"github.com/courtside/statline/internal/bbref"
	"github.com/courtside/statline/internal/cache"
	"github.com/courtside/statline/internal/config"
	"github.com/courtside/statline/internal/web"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(store *cache.Store, client *bbref.Client, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag", "Content-Disposition"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(store, client, cfg, logger)

	// --- Routes ---

	// Dashboard page (the UI collaborator; everything it shows comes from /api/v1)
	r.Get("/", web.Dashboard)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/", h.Root)
		r.Get("/seasons", h.GetSeasons)

		r.Route("/seasons/{year}", func(r chi.Router) {
			r.Get("/", h.GetSeason)
			r.Get("/players", h.GetPlayers)
			r.Get("/top", h.GetTop)
			r.Get("/correlation", h.GetCorrelation)
			r.Get("/groups", h.GetGroups)
			r.Get("/compare", h.GetCompare)
			r.Get("/summary", h.GetSummary)
			r.Get("/export.csv", h.ExportCSV)
		})
	})

	return r
}
