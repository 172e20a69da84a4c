package stats

import (
	"testing"

	"github.com/courtside/statline/internal/season"
)

func testTable() *season.Table {
	return &season.Table{
		Year: 2024,
		Columns: []season.Column{
			{Name: "Player"},
			{Name: "Team"},
			{Name: "Pos"},
			{Name: "G", Numeric: true},
			{Name: "AST", Numeric: true},
			{Name: "PTS", Numeric: true},
		},
		Rows: []*season.Row{
			{Player: "Alpha One", Team: "BOS", Pos: "PG", Stats: map[string]float64{"G": 70, "AST": 8.1, "PTS": 30}},
			{Player: "Bravo Two", Team: "LAL", Pos: "C", Stats: map[string]float64{"G": 55, "AST": 3.4, "PTS": 10}},
			{Player: "Charlie Three", Team: "BOS", Pos: "SG", Stats: map[string]float64{"G": 82, "AST": 4.7, "PTS": 25}},
			{Player: "Delta Four", Team: "TOT", Pos: "PF", Stats: map[string]float64{"G": 61, "AST": 2.2, "PTS": 25}},
			{Player: "Echo Five", Team: "MIA", Pos: "PG", Stats: map[string]float64{"G": 12, "AST": 1.0, "PTS": 5}},
		},
	}
}

func playerNames(t *season.Table) []string {
	names := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		names[i] = r.Player
	}
	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want []string
	}{
		{
			"empty selection keeps everything",
			Selection{},
			[]string{"Alpha One", "Bravo Two", "Charlie Three", "Delta Four", "Echo Five"},
		},
		{
			"empty team set means all teams",
			Selection{Positions: []string{"PG"}},
			[]string{"Alpha One", "Echo Five"},
		},
		{
			"team filter",
			Selection{Teams: []string{"BOS"}},
			[]string{"Alpha One", "Charlie Three"},
		},
		{
			"combined thresholds",
			Selection{MinGames: 60, MinPoints: 20},
			[]string{"Alpha One", "Charlie Three", "Delta Four"},
		},
		{
			"team and threshold intersect",
			Selection{Teams: []string{"BOS", "MIA"}, MinGames: 50},
			[]string{"Alpha One", "Charlie Three"},
		},
		{
			"no matches yields empty table",
			Selection{Teams: []string{"NYK"}},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(testTable(), tt.sel)
			if !equalStrings(playerNames(got), tt.want) {
				t.Errorf("got %v, want %v", playerNames(got), tt.want)
			}
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	table := testTable()
	before := table.Len()
	Filter(table, Selection{MinPoints: 100})
	if table.Len() != before {
		t.Errorf("input table shrank from %d to %d rows", before, table.Len())
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	got := Filter(testTable(), Selection{MinGames: 50})
	want := []string{"Alpha One", "Bravo Two", "Charlie Three", "Delta Four"}
	if !equalStrings(playerNames(got), want) {
		t.Errorf("got %v, want %v", playerNames(got), want)
	}
}
