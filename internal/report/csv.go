package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"zoomdigest/internal/attendees"
)

func writeCSV(w io.Writer, records []attendees.DigestedRecord, bom bool) error {
	if bom {
		if _, err := w.Write(utf8BOM); err != nil {
			return fmt.Errorf("write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(attendees.DigestHeader); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}
	for i, record := range records {
		if err := writer.Write(record.Row()); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
