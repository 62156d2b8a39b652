package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// csvHeader is the fixed export header. Downstream spreadsheets key on
// these column names; do not reorder.
var csvHeader = []string{"date", "game", "score", "maxAttempts", "completed"}

// WriteCSV writes one row per record in the order given. Dates use
// RFC 3339 so they are unambiguous across locales. A missing score is
// an empty cell.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		score := ""
		if r.Score != nil {
			score = strconv.Itoa(*r.Score)
		}
		row := []string{
			r.Timestamp.Format(time.RFC3339),
			r.GameName,
			score,
			strconv.Itoa(r.MaxAttempts),
			strconv.FormatBool(r.Completed),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
