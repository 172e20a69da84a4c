// Package handler provides HTTP handlers for all API endpoints. Handlers
// resolve a season table through the cache (fetching on a miss) and run the
// pure view functions from internal/stats over it — no service layer.
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/courtside/statline/internal/api/respond"
	"github.com/courtside/statline/internal/bbref"
	"github.com/courtside/statline/internal/cache"
	"github.com/courtside/statline/internal/config"
	"github.com/courtside/statline/internal/season"
	"github.com/courtside/statline/internal/stats"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	store  *cache.Store
	client *bbref.Client
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a Handler with shared dependencies. The cache store and the
// scrape client are owned by the composition root and injected here.
func New(store *cache.Store, client *bbref.Client, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{store: store, client: client, cfg: cfg, logger: logger}
}

// Root serves API info at /api/v1.
// @Summary API root info
// @Description Returns API name, version, status, and supported season range.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1 [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":     "Statline API",
		"version":  "1.0.0",
		"status":   "running",
		"docs":     "/docs",
		"min_year": h.cfg.MinYear,
		"max_year": h.cfg.MaxYear,
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns season cache statistics (cached years, fresh/stale counts).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.store.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// loadSeason resolves the {year} path param and returns the (possibly
// cached) season table. On failure it writes the error response and
// returns ok=false. A true stale flag means the refresh failed and the
// previous table is being served; the failure is flagged on the response
// so clients never mistake stale data for fresh.
func (h *Handler) loadSeason(w http.ResponseWriter, r *http.Request) (table *season.Table, year int, hit, stale, ok bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_YEAR", "year must be an integer")
		return nil, 0, false, false, false
	}

	table, hit, err = h.store.GetOrFetch(r.Context(), year, h.client.FetchSeason)
	if err != nil {
		// A stale table alongside an error means the refresh failed but the
		// prior entry survives; serve it rather than failing the request.
		if table != nil {
			h.logger.Warn("serving stale season after failed refresh", "year", year, "error", err)
			w.Header().Set("X-Stale", "true")
			w.Header().Set("Warning", `110 - "season refresh failed, response is stale"`)
			w.Header().Set("Cache-Control", "no-cache")
			return table, year, true, true, true
		}
		writeFetchError(w, err)
		return nil, 0, false, false, false
	}
	return table, year, hit, false, true
}

// writeFetchError maps the scraper's error taxonomy onto HTTP statuses.
func writeFetchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bbref.ErrYear):
		respond.WriteErrorDetail(w, http.StatusBadRequest, "YEAR_OUT_OF_RANGE",
			"year outside the supported season range", err.Error())
	case errors.Is(err, bbref.ErrTimeout):
		respond.WriteError(w, http.StatusGatewayTimeout, "UPSTREAM_TIMEOUT",
			"stats source timed out; retry shortly")
	case errors.Is(err, bbref.ErrParse):
		respond.WriteError(w, http.StatusBadGateway, "UPSTREAM_PARSE",
			"stats source returned an unparseable page")
	default:
		respond.WriteError(w, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE",
			"stats source is unreachable")
	}
}

// parseSelection reads the shared filter query params. Missing or empty
// teams/positions params mean "all".
func parseSelection(r *http.Request) (stats.Selection, error) {
	q := r.URL.Query()
	sel := stats.Selection{
		Teams:     splitParam(q.Get("teams")),
		Positions: splitParam(q.Get("positions")),
	}
	if v := q.Get("min_games"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || n < 0 {
			return sel, errors.New("min_games must be a non-negative number")
		}
		sel.MinGames = n
	}
	if v := q.Get("min_points"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || n < 0 {
			return sel, errors.New("min_points must be a non-negative number")
		}
		sel.MinPoints = n
	}
	return sel, nil
}

func splitParam(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
