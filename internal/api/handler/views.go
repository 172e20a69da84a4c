package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/courtside/statline/internal/api/respond"
	"github.com/courtside/statline/internal/stats"
)

// GetPlayers returns the filtered player rows for a season.
// @Summary Filter season players
// @Description Applies team/position/threshold filters and returns the matching rows in original order. Empty filter sets match everything.
// @Tags views
// @Produce json
// @Param year path int true "Season year"
// @Param teams query string false "Comma-separated team codes"
// @Param positions query string false "Comma-separated positions (C, PF, SF, PG, SG)"
// @Param min_games query number false "Minimum games played"
// @Param min_points query number false "Minimum points per game"
// @Success 200 {object} season.Table
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/v1/seasons/{year}/players [get]
func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	table, _, _, _, ok := h.loadSeason(w, r)
	if !ok {
		return
	}
	sel, err := parseSelection(r)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, stats.Filter(table, sel))
}

// GetTop returns the top-N rows by a numeric column.
// @Summary Top-N players by column
// @Description Stable descending sort by a numeric column, ties broken by original row order, truncated to n rows. Filters apply first.
// @Tags views
// @Produce json
// @Param year path int true "Season year"
// @Param column query string true "Canonical numeric column (PTS, TRB, AST, ...)"
// @Param n query int false "Row count (default 5)"
// @Success 200 {object} season.Table
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/v1/seasons/{year}/top [get]
func (h *Handler) GetTop(w http.ResponseWriter, r *http.Request) {
	table, _, _, _, ok := h.loadSeason(w, r)
	if !ok {
		return
	}
	sel, err := parseSelection(r)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}

	column := r.URL.Query().Get("column")
	if column == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_COLUMN", "column query parameter is required")
		return
	}
	n := 5
	if v := r.URL.Query().Get("n"); v != "" {
		n, err = strconv.Atoi(v)
		if err != nil || n < 1 {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_N", "n must be a positive integer")
			return
		}
	}

	top, err := stats.TopN(stats.Filter(table, sel), column, n)
	if err != nil {
		writeViewError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, top)
}

// GetCorrelation returns the Pearson correlation matrix for a season.
// @Summary Correlation matrix
// @Description Pairwise Pearson correlation over the numeric columns of the filtered table. Zero-variance columns yield null cells.
// @Tags views
// @Produce json
// @Param year path int true "Season year"
// @Success 200 {object} stats.Matrix
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/v1/seasons/{year}/correlation [get]
func (h *Handler) GetCorrelation(w http.ResponseWriter, r *http.Request) {
	table, _, _, _, ok := h.loadSeason(w, r)
	if !ok {
		return
	}
	sel, err := parseSelection(r)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, stats.CorrelationMatrix(stats.Filter(table, sel)))
}

// GetGroups returns grouped means by team or position.
// @Summary Grouped means
// @Description Groups the filtered table by team or position and returns the mean of every numeric column per group, plus player counts.
// @Tags views
// @Produce json
// @Param year path int true "Season year"
// @Param by query string true "Grouping key" Enums(team, position)
// @Success 200 {array} stats.Group
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/v1/seasons/{year}/groups [get]
func (h *Handler) GetGroups(w http.ResponseWriter, r *http.Request) {
	table, _, _, _, ok := h.loadSeason(w, r)
	if !ok {
		return
	}
	sel, err := parseSelection(r)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}

	groups, err := stats.GroupMeans(stats.Filter(table, sel), stats.GroupKey(r.URL.Query().Get("by")))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_GROUP_KEY", "by must be team or position")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, groups)
}

// GetCompare returns two players' stat lines side by side.
// @Summary Compare two players
// @Description Returns the full statistic sets of two players matched by exact name. Zero or ambiguous matches are a 404.
// @Tags views
// @Produce json
// @Param year path int true "Season year"
// @Param a query string true "First player name"
// @Param b query string true "Second player name"
// @Success 200 {object} stats.Comparison
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/seasons/{year}/compare [get]
func (h *Handler) GetCompare(w http.ResponseWriter, r *http.Request) {
	table, _, _, _, ok := h.loadSeason(w, r)
	if !ok {
		return
	}
	a, b := r.URL.Query().Get("a"), r.URL.Query().Get("b")
	if a == "" || b == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_PLAYER", "a and b query parameters are required")
		return
	}

	cmp, err := stats.Compare(table, a, b)
	if err != nil {
		writeViewError(w, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, cmp)
}

// GetSummary returns descriptive statistics per numeric column.
// @Summary Column summary statistics
// @Description Count, mean, min, and max for every numeric column of the filtered table.
// @Tags views
// @Produce json
// @Param year path int true "Season year"
// @Success 200 {array} stats.ColumnSummary
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/v1/seasons/{year}/summary [get]
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	table, _, _, _, ok := h.loadSeason(w, r)
	if !ok {
		return
	}
	sel, err := parseSelection(r)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, stats.Summary(stats.Filter(table, sel)))
}

// writeViewError maps the stats package's error types onto HTTP statuses.
func writeViewError(w http.ResponseWriter, err error) {
	var colErr *stats.ColumnError
	var nfErr *stats.NotFoundError
	switch {
	case errors.As(err, &colErr):
		respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_COLUMN",
			"requested column is absent or non-numeric for this season", colErr.Error())
	case errors.As(err, &nfErr):
		respond.WriteErrorDetail(w, http.StatusNotFound, "PLAYER_NOT_FOUND", nfErr.Error(), "")
	default:
		respond.WriteError(w, http.StatusInternalServerError, "VIEW_FAILED", err.Error())
	}
}
