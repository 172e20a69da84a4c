package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/courtside/statline/internal/season"
)

// WriteCSV encodes a table as UTF-8 comma-delimited text with a header row
// of canonical column names, one row per player, in table order.
func WriteCSV(w io.Writer, t *season.Table) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c.Name
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, len(t.Columns))
	for _, r := range t.Rows {
		for i, c := range t.Columns {
			switch c.Name {
			case "Player":
				record[i] = r.Player
			case "Pos":
				record[i] = r.Pos
			case "Team":
				record[i] = r.Team
			case "Awards":
				record[i] = r.Awards
			default:
				record[i] = strconv.FormatFloat(r.Stats[c.Name], 'f', -1, 64)
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
