package season_test

import (
	"testing"

	"github.com/courtside/statline/internal/season"
)

func TestSchemaCanonical(t *testing.T) {
	schema := season.DefaultSchema()

	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{"modern team header", "Team", "Team", true},
		{"legacy team header", "Tm", "Team", true},
		{"legacy minutes header", "MIN", "MP", true},
		{"plain stat", "PTS", "PTS", true},
		{"percentage stat", "eFG%", "eFG%", true},
		{"rank column is unrecognized", "Rk", "", false},
		{"unknown header", "WS/48", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := schema.Canonical(tt.header)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Canonical(%q) = (%q, %v), want (%q, %v)", tt.header, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSchemaIsNumeric(t *testing.T) {
	schema := season.DefaultSchema()

	for _, name := range []string{"Age", "G", "PTS", "3P%"} {
		if !schema.IsNumeric(name) {
			t.Errorf("IsNumeric(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"Player", "Team", "Pos", "Awards"} {
		if schema.IsNumeric(name) {
			t.Errorf("IsNumeric(%q) = true, want false", name)
		}
	}
}

func TestSchemaColumnsPreservesDisplayOrder(t *testing.T) {
	schema := season.DefaultSchema()
	cols := schema.Columns(map[string]bool{"PTS": true, "Player": true, "G": true, "Team": true})

	want := []string{"Player", "Team", "G", "PTS"}
	if len(cols) != len(want) {
		t.Fatalf("got %d columns, want %d", len(cols), len(want))
	}
	for i, name := range want {
		if cols[i].Name != name {
			t.Errorf("column %d = %q, want %q", i, cols[i].Name, name)
		}
	}
}

func TestNormalizeTeam(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"BOS", "BOS"},
		{"TOT", "TOT"},
		{"2TM", "TOT"},
		{"3TM", "TOT"},
		{"LAL", "LAL"},
	}
	for _, tt := range tests {
		if got := season.NormalizeTeam(tt.code); got != tt.want {
			t.Errorf("NormalizeTeam(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
