package bbref

import (
	"strings"
	"testing"

	"github.com/courtside/statline/internal/season"
)

// samplePage mimics the source markup: Rk render column, legacy "Tm"
// header, a repeated header row mid-table, a blank percentage cell, and a
// combined-total row for a traded player.
const samplePage = `<html><body>
<h1>2024 NBA Player Stats: Per Game</h1>
<table id="per_game_stats">
<thead>
<tr><th>Rk</th><th>Player</th><th>Age</th><th>Tm</th><th>Pos</th><th>G</th><th>MP</th><th>FG%</th><th>TRB</th><th>AST</th><th>PTS</th><th>Awards</th></tr>
</thead>
<tbody>
<tr><th>1</th><td>Alpha Guard</td><td>24</td><td>BOS</td><td>PG</td><td>70</td><td>34.1</td><td>.471</td><td>4.1</td><td>8.2</td><td>30.0</td><td>MVP-1</td></tr>
<tr><th>2</th><td>Bravo Wing</td><td>28</td><td>2TM</td><td>SF</td><td>65</td><td>30.5</td><td>.443</td><td>6.3</td><td>2.1</td><td>18.4</td><td></td></tr>
<tr class="thead"><th>Rk</th><td>Player</td><td>Age</td><td>Tm</td><td>Pos</td><td>G</td><td>MP</td><td>FG%</td><td>TRB</td><td>AST</td><td>PTS</td><td>Awards</td></tr>
<tr><th>3</th><td>Charlie Big</td><td>31</td><td>LAL</td><td>C</td><td>12</td><td>8.0</td><td></td><td>3.2</td><td>0.4</td><td>2.1</td><td></td></tr>
</tbody>
</table>
</body></html>`

func TestParseSeasonTable(t *testing.T) {
	table, err := ParseSeasonTable(strings.NewReader(samplePage), 2024, season.DefaultSchema())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if table.Year != 2024 {
		t.Errorf("year = %d, want 2024", table.Year)
	}
	if table.Len() != 3 {
		t.Fatalf("rows = %d, want 3 (repeated header must be dropped)", table.Len())
	}

	// Rk never survives as a column.
	if _, ok := table.Column("Rk"); ok {
		t.Error("Rk column must be dropped at parse time")
	}

	// Legacy Tm header resolves to canonical Team.
	if _, ok := table.Column("Team"); !ok {
		t.Error("Tm header should map to canonical Team column")
	}

	// Absent advanced columns stay absent.
	if _, ok := table.Column("3P%"); ok {
		t.Error("3P%% column must not be fabricated for a page that lacks it")
	}

	alpha := table.Rows[0]
	if alpha.Player != "Alpha Guard" || alpha.Team != "BOS" || alpha.Pos != "PG" {
		t.Errorf("row 0 = %q/%q/%q, want Alpha Guard/BOS/PG", alpha.Player, alpha.Team, alpha.Pos)
	}
	if alpha.Stats["PTS"] != 30.0 || alpha.Stats["FG%"] != 0.471 {
		t.Errorf("row 0 stats = PTS %.3f FG%% %.3f", alpha.Stats["PTS"], alpha.Stats["FG%"])
	}
	if alpha.Awards != "MVP-1" {
		t.Errorf("row 0 awards = %q, want MVP-1", alpha.Awards)
	}

	// Combined-total team code normalizes to TOT.
	if got := table.Rows[1].Team; got != "TOT" {
		t.Errorf("traded player team = %q, want TOT", got)
	}

	// Blank percentage cell parses to 0, not an error.
	if got := table.Rows[2].Stats["FG%"]; got != 0 {
		t.Errorf("blank FG%% cell = %v, want 0", got)
	}
}

func TestParseSeasonTablePlaceholderCell(t *testing.T) {
	page := strings.Replace(samplePage, `<td>30.0</td>`, `<td>Did Not Play</td>`, 1)
	table, err := ParseSeasonTable(strings.NewReader(page), 2024, season.DefaultSchema())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Len() != 3 {
		t.Fatalf("rows = %d, want 3 (one bad cell must not drop the table)", table.Len())
	}
	// Only the placeholder cell is zeroed; the rest of the row survives.
	alpha := table.Rows[0]
	if got := alpha.Stats["PTS"]; got != 0 {
		t.Errorf("placeholder PTS cell = %v, want 0", got)
	}
	if alpha.Stats["AST"] != 8.2 || alpha.Team != "BOS" {
		t.Errorf("rest of row damaged: AST %v team %q", alpha.Stats["AST"], alpha.Team)
	}
}

func TestParseSeasonTableDeterministic(t *testing.T) {
	first, err := ParseSeasonTable(strings.NewReader(samplePage), 2024, season.DefaultSchema())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ParseSeasonTable(strings.NewReader(samplePage), 2024, season.DefaultSchema())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Len() != second.Len() || len(first.Columns) != len(second.Columns) {
		t.Fatalf("parses differ: %d/%d rows, %d/%d columns",
			first.Len(), second.Len(), len(first.Columns), len(second.Columns))
	}
	for i := range first.Rows {
		if first.Rows[i].Player != second.Rows[i].Player {
			t.Errorf("row %d player differs: %q vs %q", i, first.Rows[i].Player, second.Rows[i].Player)
		}
	}
}

func TestParseSeasonTableFallbackWithoutID(t *testing.T) {
	page := strings.Replace(samplePage, ` id="per_game_stats"`, "", 1)
	table, err := ParseSeasonTable(strings.NewReader(page), 2024, season.DefaultSchema())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Len() != 3 {
		t.Errorf("rows = %d, want 3", table.Len())
	}
}

func TestParseSeasonTableErrors(t *testing.T) {
	tests := []struct {
		name string
		page string
	}{
		{"no table", `<html><body><p>scheduled maintenance</p></body></html>`},
		{"no recognized columns", `<html><body><table id="per_game_stats"><thead><tr><th>Foo</th></tr></thead><tbody><tr><td>1</td></tr></tbody></table></body></html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSeasonTable(strings.NewReader(tt.page), 2024, season.DefaultSchema()); err == nil {
				t.Error("expected parse error, got nil")
			}
		})
	}
}
