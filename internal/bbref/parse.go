package bbref

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/courtside/statline/internal/season"
)

// perGameTableID is the stable element id of the stats table in current
// markup. Older snapshots used totals-style ids, so parsing falls back to
// the first table whose header row contains a Player column.
const perGameTableID = "per_game_stats"

// ParseSeasonTable extracts the single per-game player table from a season
// page. Repeated header rows (the site reinserts the header every 20 rows)
// are dropped, the Rk column is discarded, team codes are normalized, and
// numeric cells are coerced with blank or placeholder cells stored as 0.
func ParseSeasonTable(r io.Reader, year int, schema *season.Schema) (*season.Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	sel := findStatsTable(doc)
	if sel == nil {
		return nil, fmt.Errorf("no player stats table in document")
	}

	canonical := readHeader(sel, schema)
	if len(canonical) == 0 {
		return nil, fmt.Errorf("stats table has no recognized columns")
	}

	present := make(map[string]bool, len(canonical))
	for _, name := range canonical {
		if name != "" {
			present[name] = true
		}
	}

	var rows []*season.Row
	sel.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		if isRepeatedHeader(tr) {
			return
		}
		if row := buildRow(tr, canonical); row != nil {
			rows = append(rows, row)
		}
	})
	if len(rows) == 0 {
		return nil, fmt.Errorf("stats table has no player rows")
	}

	return &season.Table{
		Year:    year,
		Columns: schema.Columns(present),
		Rows:    rows,
	}, nil
}

// findStatsTable locates the per-game table by id, falling back to the
// first table with a Player header cell.
func findStatsTable(doc *goquery.Document) *goquery.Selection {
	if sel := doc.Find("table#" + perGameTableID); sel.Length() > 0 {
		return sel.First()
	}
	var found *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		hasPlayer := false
		table.Find("thead th").Each(func(_ int, th *goquery.Selection) {
			if strings.TrimSpace(th.Text()) == "Player" {
				hasPlayer = true
			}
		})
		if hasPlayer {
			found = table
			return false
		}
		return true
	})
	return found
}

// readHeader returns the canonical name for each source header cell in
// column order. Unrecognized headers (Rk included) map to "" and the
// corresponding cells are skipped during row construction.
func readHeader(table *goquery.Selection, schema *season.Schema) []string {
	var canonical []string
	table.Find("thead tr").Last().Find("th").Each(func(_ int, th *goquery.Selection) {
		h := strings.TrimSpace(th.Text())
		if name, ok := schema.Canonical(h); ok {
			canonical = append(canonical, name)
		} else {
			canonical = append(canonical, "")
		}
	})
	return canonical
}

// isRepeatedHeader detects the header rows the site reinserts mid-table.
func isRepeatedHeader(tr *goquery.Selection) bool {
	if tr.HasClass("thead") {
		return true
	}
	first := strings.TrimSpace(tr.Find("th, td").First().Text())
	return first == "Rk" || first == "Player"
}

// buildRow constructs one player row. Cells are matched to headers by
// position; the leading Rk cell is a th in source markup, so both th and td
// cells are walked in order. Returns nil for spacer rows.
func buildRow(tr *goquery.Selection, canonical []string) *season.Row {
	cells := tr.Find("th, td")
	if cells.Length() == 0 {
		return nil
	}

	row := &season.Row{Stats: make(map[string]float64)}
	var sawPlayer bool

	limit := cells.Length()
	if limit > len(canonical) {
		limit = len(canonical)
	}
	for i := 0; i < limit; i++ {
		name := canonical[i]
		if name == "" {
			continue
		}
		text := strings.TrimSpace(cells.Eq(i).Text())
		switch name {
		case "Player":
			row.Player = text
			sawPlayer = text != ""
		case "Pos":
			row.Pos = text
		case "Team":
			row.Team = season.NormalizeTeam(text)
		case "Awards":
			row.Awards = text
		default:
			row.Stats[name] = parseStat(text)
		}
	}

	if !sawPlayer {
		return nil
	}
	return row
}

// parseStat coerces a numeric cell. Blank cells (players with zero attempts
// have empty percentage cells) and placeholder tokens like "Did Not Play"
// become 0; a bad cell never fails the surrounding parse, matching the
// upstream cleanup rule.
func parseStat(text string) float64 {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return v
}
