package handler

import (
	"fmt"
	"net/http"

	"github.com/courtside/statline/internal/api/respond"
	"github.com/courtside/statline/internal/stats"
)

// ExportCSV streams the filtered season table as a CSV attachment.
// @Summary Export filtered season as CSV
// @Description Returns the filtered table as UTF-8 comma-delimited text with canonical column headers, one row per player.
// @Tags export
// @Produce text/csv
// @Param year path int true "Season year"
// @Param teams query string false "Comma-separated team codes"
// @Param positions query string false "Comma-separated positions"
// @Param min_games query number false "Minimum games played"
// @Param min_points query number false "Minimum points per game"
// @Success 200 {string} string "CSV body"
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/v1/seasons/{year}/export.csv [get]
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	table, year, _, _, ok := h.loadSeason(w, r)
	if !ok {
		return
	}
	sel, err := parseSelection(r)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}

	respond.CSVHeaders(w, fmt.Sprintf("nba_stats_%d.csv", year))
	if err := stats.WriteCSV(w, stats.Filter(table, sel)); err != nil {
		// Headers are already sent; the truncated body is all the client sees.
		h.logger.Error("csv export aborted mid-stream", "year", year, "error", err)
	}
}
