// Package stats implements the pure, read-only views over a season table:
// filtering, top-N, grouped means, Pearson correlation, player comparison,
// per-column summaries, and CSV export. Nothing here mutates its input.
package stats

import "github.com/courtside/statline/internal/season"

// Selection is a row predicate for Filter. Empty Teams/Positions mean
// "all teams" / "all positions"; an empty set never means "match nothing".
type Selection struct {
	Teams     []string
	Positions []string
	MinGames  float64
	MinPoints float64
}

// matches reports whether a row passes every predicate.
func (s *Selection) matches(r *season.Row) bool {
	if len(s.Teams) > 0 && !contains(s.Teams, r.Team) {
		return false
	}
	if len(s.Positions) > 0 && !contains(s.Positions, r.Pos) {
		return false
	}
	return r.Games() >= s.MinGames && r.Points() >= s.MinPoints
}

// Filter returns a new table containing the rows that pass the selection,
// in their original order. Rows are shared with the input table.
func Filter(t *season.Table, sel Selection) *season.Table {
	rows := make([]*season.Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		if sel.matches(r) {
			rows = append(rows, r)
		}
	}
	return t.WithRows(rows)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
