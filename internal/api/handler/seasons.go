package handler

import (
	"encoding/json"
	"net/http"

	"github.com/courtside/statline/internal/api/respond"
	"github.com/courtside/statline/internal/cache"
)

// GetSeasons returns the supported season range.
// @Summary List supported seasons
// @Description Returns the supported season year range, newest first.
// @Tags seasons
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/seasons [get]
func (h *Handler) GetSeasons(w http.ResponseWriter, r *http.Request) {
	years := make([]int, 0, h.cfg.MaxYear-h.cfg.MinYear+1)
	for y := h.cfg.MaxYear; y >= h.cfg.MinYear; y-- {
		years = append(years, y)
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"min_year": h.cfg.MinYear,
		"max_year": h.cfg.MaxYear,
		"years":    years,
	})
}

// GetSeason returns the full canonical table for a season.
// @Summary Get season table
// @Description Returns the complete parsed per-game player table for a year. Served from the in-process season cache when fresh.
// @Tags seasons
// @Produce json
// @Param year path int true "Season year (the year the season ends in)"
// @Success 200 {object} season.Table
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Failure 504 {object} respond.ErrorResponse
// @Router /api/v1/seasons/{year} [get]
func (h *Handler) GetSeason(w http.ResponseWriter, r *http.Request) {
	table, year, hit, stale, ok := h.loadSeason(w, r)
	if !ok {
		return
	}

	data, err := json.Marshal(table)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODE_FAILED", "failed to encode season table")
		return
	}

	etag := cache.ComputeETag(data)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	if stale {
		respond.WriteJSONStale(w, data, etag)
		return
	}

	ttl := cache.TTLHistorical
	if year == h.cfg.MaxYear {
		ttl = cache.TTLCurrentSeason
	}
	respond.WriteJSON(w, data, etag, ttl, hit)
}
