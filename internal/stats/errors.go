package stats

import "fmt"

// ColumnError reports a requested column that is absent or non-numeric for
// the active year's column set.
type ColumnError struct {
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("column %q is absent or non-numeric for this season", e.Column)
}

// NotFoundError reports a player-name lookup that matched zero rows or more
// than one row. Ambiguous names are surfaced, never silently resolved.
type NotFoundError struct {
	Name    string
	Matches int
}

func (e *NotFoundError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("player %q not found", e.Name)
	}
	return fmt.Sprintf("player %q is ambiguous (%d rows match)", e.Name, e.Matches)
}
