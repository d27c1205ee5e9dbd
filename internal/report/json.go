package report

import (
	"encoding/json"
	"io"

	"zoomdigest/internal/attendees"
)

func writeJSON(w io.Writer, records []attendees.DigestedRecord) error {
	if records == nil {
		records = []attendees.DigestedRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
