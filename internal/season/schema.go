package season

// Schema describes how a source year's table headers map onto canonical
// column names. basketball-reference has renamed headers over the years
// ("Tm" became "Team" in 2024-era markup) and mid-season trades are coded
// differently across versions ("TOT" vs "2TM"/"3TM"); the schema pins both
// down so normalization stays testable instead of ad hoc string patching.
type Schema struct {
	aliases map[string]string
}

// Canonical per-game columns in display order. Player, Pos, Team, and Awards
// are text; everything else is numeric.
var canonicalOrder = []Column{
	{Name: "Player"},
	{Name: "Age", Numeric: true},
	{Name: "Team"},
	{Name: "Pos"},
	{Name: "G", Numeric: true},
	{Name: "GS", Numeric: true},
	{Name: "MP", Numeric: true},
	{Name: "FG", Numeric: true},
	{Name: "FGA", Numeric: true},
	{Name: "FG%", Numeric: true},
	{Name: "3P", Numeric: true},
	{Name: "3PA", Numeric: true},
	{Name: "3P%", Numeric: true},
	{Name: "2P", Numeric: true},
	{Name: "2PA", Numeric: true},
	{Name: "2P%", Numeric: true},
	{Name: "eFG%", Numeric: true},
	{Name: "FT", Numeric: true},
	{Name: "FTA", Numeric: true},
	{Name: "FT%", Numeric: true},
	{Name: "ORB", Numeric: true},
	{Name: "DRB", Numeric: true},
	{Name: "TRB", Numeric: true},
	{Name: "AST", Numeric: true},
	{Name: "STL", Numeric: true},
	{Name: "BLK", Numeric: true},
	{Name: "TOV", Numeric: true},
	{Name: "PF", Numeric: true},
	{Name: "PTS", Numeric: true},
	{Name: "Awards"},
}

// DefaultSchema covers every header variant the source has emitted for the
// per-game table. Rk is intentionally absent: it is a render artifact and is
// dropped at parse time.
func DefaultSchema() *Schema {
	return &Schema{aliases: map[string]string{
		// Legacy header renames
		"Tm":  "Team",
		"MIN": "MP",
		// Identity entries for every canonical header
		"Player": "Player", "Age": "Age", "Team": "Team", "Pos": "Pos",
		"G": "G", "GS": "GS", "MP": "MP",
		"FG": "FG", "FGA": "FGA", "FG%": "FG%",
		"3P": "3P", "3PA": "3PA", "3P%": "3P%",
		"2P": "2P", "2PA": "2PA", "2P%": "2P%",
		"eFG%": "eFG%",
		"FT":   "FT", "FTA": "FTA", "FT%": "FT%",
		"ORB": "ORB", "DRB": "DRB", "TRB": "TRB",
		"AST": "AST", "STL": "STL", "BLK": "BLK",
		"TOV": "TOV", "PF": "PF", "PTS": "PTS",
		"Awards": "Awards",
	}}
}

// Canonical resolves a source header to its canonical column name. Unknown
// headers resolve to ok=false and the caller skips the column, which is how
// absent advanced columns stay absent instead of appearing with fake values.
func (s *Schema) Canonical(header string) (string, bool) {
	name, ok := s.aliases[header]
	return name, ok
}

// IsNumeric reports whether a canonical column holds numeric stats.
func (s *Schema) IsNumeric(canonical string) bool {
	for _, c := range canonicalOrder {
		if c.Name == canonical {
			return c.Numeric
		}
	}
	return false
}

// Columns builds the ordered column set for the canonical names actually
// present in a parsed table, preserving display order.
func (s *Schema) Columns(present map[string]bool) []Column {
	var cols []Column
	for _, c := range canonicalOrder {
		if present[c.Name] {
			cols = append(cols, c)
		}
	}
	return cols
}

// NormalizeTeam maps the combined-total row codes a traded player gets
// ("TOT" historically, "2TM"/"3TM"/"4TM" in newer markup) onto a single
// canonical code. Regular team codes pass through unchanged.
func NormalizeTeam(code string) string {
	switch code {
	case "TOT", "2TM", "3TM", "4TM", "5TM":
		return "TOT"
	}
	return code
}
