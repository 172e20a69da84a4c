package stats

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/courtside/statline/internal/season"
)

// unknownGroup buckets rows whose group key is blank. They count toward the
// aggregate rather than silently disappearing.
const unknownGroup = "Unknown"

// TopN returns a new table with the n highest rows by the given numeric
// column, descending. Ties keep their original relative order.
func TopN(t *season.Table, column string, n int) (*season.Table, error) {
	col, ok := t.Column(column)
	if !ok || !col.Numeric {
		return nil, &ColumnError{Column: column}
	}

	rows := make([]*season.Row, len(t.Rows))
	copy(rows, t.Rows)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Stats[column] > rows[j].Stats[column]
	})
	if n >= 0 && n < len(rows) {
		rows = rows[:n]
	}
	return t.WithRows(rows), nil
}

// Cell is a correlation value that serializes NaN as JSON null, since
// encoding/json refuses NaN outright.
type Cell float64

// MarshalJSON renders NaN as null and everything else as a plain number.
func (c Cell) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(c)) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(c))
}

// Matrix is a pairwise Pearson correlation over the table's numeric columns.
// Cells involving a zero-variance column are NaN; they surface as JSON null
// rather than dropping rows or erroring.
type Matrix struct {
	Columns []string `json:"columns"`
	Cells   [][]Cell `json:"cells"`
}

// CorrelationMatrix computes pairwise Pearson correlation between every
// numeric column of the table.
func CorrelationMatrix(t *season.Table) *Matrix {
	cols := t.NumericColumns()
	n := len(t.Rows)

	series := make([][]float64, len(cols))
	for i, name := range cols {
		series[i] = make([]float64, n)
		for j, r := range t.Rows {
			series[i][j] = r.Stats[name]
		}
	}

	cells := make([][]Cell, len(cols))
	for i := range cols {
		cells[i] = make([]Cell, len(cols))
		for j := range cols {
			if j < i {
				cells[i][j] = cells[j][i]
				continue
			}
			cells[i][j] = Cell(pearson(series[i], series[j]))
		}
	}
	return &Matrix{Columns: cols, Cells: cells}
}

// pearson returns the correlation of two equal-length series, or NaN when
// either series is empty or has zero variance.
func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	if n == 0 {
		return math.NaN()
	}
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(varX*varY)
}

// GroupKey selects the grouping dimension for GroupMeans.
type GroupKey string

const (
	GroupByTeam     GroupKey = "team"
	GroupByPosition GroupKey = "position"
)

// Group is the aggregate for one team or position.
type Group struct {
	Key     string             `json:"key"`
	Players int                `json:"players"`
	Means   map[string]float64 `json:"means"`
}

// GroupMeans groups rows by team or position and computes the arithmetic
// mean of every numeric column per group. Rows with a blank key land in the
// "Unknown" bucket. Groups come back sorted by key.
func GroupMeans(t *season.Table, by GroupKey) ([]Group, error) {
	if by != GroupByTeam && by != GroupByPosition {
		return nil, &ColumnError{Column: string(by)}
	}
	cols := t.NumericColumns()

	sums := make(map[string]map[string]float64)
	counts := make(map[string]int)
	for _, r := range t.Rows {
		key := r.Team
		if by == GroupByPosition {
			key = r.Pos
		}
		if key == "" {
			key = unknownGroup
		}
		if sums[key] == nil {
			sums[key] = make(map[string]float64, len(cols))
		}
		counts[key]++
		for _, c := range cols {
			sums[key][c] += r.Stats[c]
		}
	}

	groups := make([]Group, 0, len(sums))
	for key, colSums := range sums {
		means := make(map[string]float64, len(cols))
		for _, c := range cols {
			means[c] = colSums[c] / float64(counts[key])
		}
		groups = append(groups, Group{Key: key, Players: counts[key], Means: means})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups, nil
}

// Comparison holds two players' rows side by side.
type Comparison struct {
	Columns []season.Column `json:"columns"`
	A       *season.Row     `json:"a"`
	B       *season.Row     `json:"b"`
}

// Compare returns the full stat lines for two players matched by exact
// name. A name matching zero rows or more than one row (two journeymen with
// the same name, or a traded player without a combined row) fails with
// *NotFoundError.
func Compare(t *season.Table, a, b string) (*Comparison, error) {
	rowA, err := findPlayer(t, a)
	if err != nil {
		return nil, err
	}
	rowB, err := findPlayer(t, b)
	if err != nil {
		return nil, err
	}
	return &Comparison{Columns: t.Columns, A: rowA, B: rowB}, nil
}

func findPlayer(t *season.Table, name string) (*season.Row, error) {
	var found *season.Row
	matches := 0
	for _, r := range t.Rows {
		if r.Player == name {
			found = r
			matches++
		}
	}
	if matches != 1 {
		return nil, &NotFoundError{Name: name, Matches: matches}
	}
	return found, nil
}

// ColumnSummary holds descriptive statistics for one numeric column.
type ColumnSummary struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summary computes count/mean/min/max for every numeric column.
func Summary(t *season.Table) []ColumnSummary {
	cols := t.NumericColumns()
	out := make([]ColumnSummary, 0, len(cols))
	for _, name := range cols {
		s := ColumnSummary{Column: name, Count: len(t.Rows)}
		if len(t.Rows) == 0 {
			out = append(out, s)
			continue
		}
		s.Min, s.Max = math.Inf(1), math.Inf(-1)
		var sum float64
		for _, r := range t.Rows {
			v := r.Stats[name]
			sum += v
			s.Min = math.Min(s.Min, v)
			s.Max = math.Max(s.Max, v)
		}
		s.Mean = sum / float64(len(t.Rows))
		out = append(out, s)
	}
	return out
}
