package stats

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/courtside/statline/internal/season"
)

func TestTopN(t *testing.T) {
	got, err := TopN(testTable(), "PTS", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Charlie and Delta both score 25; the earlier row must stay first.
	want := []string{"Alpha One", "Charlie Three", "Delta Four", "Bravo Two", "Echo Five"}
	if !equalStrings(playerNames(got), want) {
		t.Errorf("got %v, want %v", playerNames(got), want)
	}
}

func TestTopNTruncates(t *testing.T) {
	got, err := TopN(testTable(), "PTS", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Alpha One", "Charlie Three"}
	if !equalStrings(playerNames(got), want) {
		t.Errorf("got %v, want %v", playerNames(got), want)
	}
}

func TestTopNLargerThanTable(t *testing.T) {
	got, err := TopN(testTable(), "AST", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Len() != 5 {
		t.Errorf("rows = %d, want 5", got.Len())
	}
}

func TestTopNInvalidColumn(t *testing.T) {
	for _, column := range []string{"WS/48", "Player"} {
		_, err := TopN(testTable(), column, 5)
		var ce *ColumnError
		if !errors.As(err, &ce) {
			t.Errorf("column %q: got %v, want *ColumnError", column, err)
		}
	}
}

func TestCorrelationMatrix(t *testing.T) {
	m := CorrelationMatrix(testTable())
	if !equalStrings(m.Columns, []string{"G", "AST", "PTS"}) {
		t.Fatalf("columns = %v", m.Columns)
	}
	for i := range m.Columns {
		if v := float64(m.Cells[i][i]); v != 1 {
			t.Errorf("diagonal [%d][%d] = %v, want 1", i, i, v)
		}
		for j := range m.Columns {
			v := float64(m.Cells[i][j])
			if math.IsNaN(v) {
				t.Errorf("cell [%d][%d] is NaN", i, j)
				continue
			}
			if v < -1 || v > 1 {
				t.Errorf("cell [%d][%d] = %v, outside [-1, 1]", i, j, v)
			}
			if v != float64(m.Cells[j][i]) {
				t.Errorf("matrix not symmetric at [%d][%d]", i, j)
			}
		}
	}
}

func TestCorrelationMatrixZeroVariance(t *testing.T) {
	table := &season.Table{
		Year: 2024,
		Columns: []season.Column{
			{Name: "Player"},
			{Name: "G", Numeric: true},
			{Name: "PTS", Numeric: true},
		},
		Rows: []*season.Row{
			{Player: "A", Stats: map[string]float64{"G": 50, "PTS": 10}},
			{Player: "B", Stats: map[string]float64{"G": 50, "PTS": 20}},
			{Player: "C", Stats: map[string]float64{"G": 50, "PTS": 30}},
		},
	}
	m := CorrelationMatrix(table)
	if !math.IsNaN(float64(m.Cells[0][1])) {
		t.Errorf("constant column correlation = %v, want NaN", m.Cells[0][1])
	}

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), "null") {
		t.Errorf("NaN cell did not serialize as null: %s", data)
	}
}

func TestGroupMeans(t *testing.T) {
	groups, err := GroupMeans(testTable(), GroupByTeam)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	if !equalStrings(keys, []string{"BOS", "LAL", "MIA", "TOT"}) {
		t.Fatalf("keys = %v", keys)
	}

	bos := groups[0]
	if bos.Players != 2 {
		t.Errorf("BOS players = %d, want 2", bos.Players)
	}
	if got := bos.Means["PTS"]; got != 27.5 {
		t.Errorf("BOS mean PTS = %v, want 27.5", got)
	}
}

func TestGroupMeansUnknownBucket(t *testing.T) {
	table := testTable()
	table.Rows[1].Team = ""
	groups, err := GroupMeans(table, GroupByTeam)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var unknown *Group
	for i := range groups {
		if groups[i].Key == "Unknown" {
			unknown = &groups[i]
		}
	}
	if unknown == nil {
		t.Fatal("no Unknown group for blank team")
	}
	if unknown.Players != 1 {
		t.Errorf("Unknown players = %d, want 1", unknown.Players)
	}
}

func TestGroupMeansInvalidKey(t *testing.T) {
	_, err := GroupMeans(testTable(), GroupKey("age"))
	var ce *ColumnError
	if !errors.As(err, &ce) {
		t.Errorf("got %v, want *ColumnError", err)
	}
}

func TestCompare(t *testing.T) {
	cmp, err := Compare(testTable(), "Alpha One", "Bravo Two")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmp.A.Player != "Alpha One" || cmp.B.Player != "Bravo Two" {
		t.Errorf("got %q vs %q", cmp.A.Player, cmp.B.Player)
	}
	if cmp.A.Stats["PTS"] != 30 {
		t.Errorf("A PTS = %v, want 30", cmp.A.Stats["PTS"])
	}
}

func TestCompareNotFound(t *testing.T) {
	_, err := Compare(testTable(), "Alpha One", "Zulu Nine")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("got %v, want *NotFoundError", err)
	}
	if nf.Name != "Zulu Nine" || nf.Matches != 0 {
		t.Errorf("NotFoundError = %+v", nf)
	}
}

func TestCompareAmbiguousName(t *testing.T) {
	table := testTable()
	table.Rows = append(table.Rows, &season.Row{
		Player: "Alpha One", Team: "NYK", Pos: "SF",
		Stats: map[string]float64{"G": 20, "AST": 1, "PTS": 8},
	})
	_, err := Compare(table, "Alpha One", "Bravo Two")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("got %v, want *NotFoundError", err)
	}
	if nf.Matches != 2 {
		t.Errorf("Matches = %d, want 2", nf.Matches)
	}
}

func TestSummary(t *testing.T) {
	summaries := Summary(testTable())
	byColumn := make(map[string]ColumnSummary, len(summaries))
	for _, s := range summaries {
		byColumn[s.Column] = s
	}

	pts, ok := byColumn["PTS"]
	if !ok {
		t.Fatal("no PTS summary")
	}
	if pts.Count != 5 || pts.Min != 5 || pts.Max != 30 || pts.Mean != 19 {
		t.Errorf("PTS summary = %+v", pts)
	}
	if _, ok := byColumn["Player"]; ok {
		t.Error("text column Player must not be summarized")
	}
}

func TestSummaryEmptyTable(t *testing.T) {
	empty := testTable().WithRows(nil)
	for _, s := range Summary(empty) {
		if s.Count != 0 || s.Mean != 0 || s.Min != 0 || s.Max != 0 {
			t.Errorf("empty table summary = %+v", s)
		}
	}
}
