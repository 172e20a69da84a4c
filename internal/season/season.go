// Package season defines the canonical season table model shared by the
// scraper, the analytics views, and the API handlers. A Table is built once
// by the scraper and never mutated; every downstream view works on a new
// Table that shares the underlying rows.
package season

// Column is one canonical column of a season table. Numeric columns hold
// float64 stats on each row; the rest (Player, Pos, Team, Awards) are text.
type Column struct {
	Name    string `json:"name"`
	Numeric bool   `json:"numeric"`
}

// Row is one player's line for a season. Stats is keyed by canonical column
// name and only contains the numeric columns present for that year; a blank
// cell in the source (zero attempts, missing advanced stat) is stored as 0.
type Row struct {
	Player string             `json:"player"`
	Pos    string             `json:"pos"`
	Team   string             `json:"team"`
	Stats  map[string]float64 `json:"stats"`
	Awards string             `json:"awards,omitempty"`
}

// Games returns the games-played count for the row.
func (r *Row) Games() float64 { return r.Stats["G"] }

// Points returns points per game for the row.
func (r *Row) Points() float64 { return r.Stats["PTS"] }

// Table is an ordered collection of player rows for one year. The column set
// is fixed at parse time: older seasons simply lack the advanced columns and
// nothing is fabricated for them.
type Table struct {
	Year    int      `json:"year"`
	Columns []Column `json:"columns"`
	Rows    []*Row   `json:"rows"`
}

// Column returns the column with the given canonical name.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// NumericColumns returns the names of all numeric columns, in table order.
func (t *Table) NumericColumns() []string {
	var names []string
	for _, c := range t.Columns {
		if c.Numeric {
			names = append(names, c.Name)
		}
	}
	return names
}

// WithRows returns a new table with the same year and column set but a
// different row slice. Rows are shared, never copied; callers must treat
// them as read-only.
func (t *Table) WithRows(rows []*Row) *Table {
	return &Table{Year: t.Year, Columns: t.Columns, Rows: rows}
}

// Len returns the number of player rows.
func (t *Table) Len() int { return len(t.Rows) }
