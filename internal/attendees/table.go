package attendees

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// skipLines drops the first n physical lines of text. Zoom reports open with
// a meeting summary block whose rows do not share the attendee header.
func skipLines(text []byte, n int) []byte {
	for i := 0; i < n; i++ {
		idx := bytes.IndexByte(text, '\n')
		if idx < 0 {
			return nil
		}
		text = text[idx+1:]
	}
	return text
}

type columnIndex map[string]int

func indexHeader(header []string) (columnIndex, error) {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}
	return idx, nil
}

func (c columnIndex) cell(row []string, column string) string {
	i := c[column]
	if i >= len(row) {
		return ""
	}
	return row[i]
}

// parseTable reads UTF-8 text into attendee rows. lineOffset is added to the
// reader's line numbers so they refer to the original file. Text with no rows
// at all yields an empty table rather than a schema error.
func parseTable(text []byte, lineOffset int) ([]AttendeeRecord, error) {
	reader := csv.NewReader(bytes.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}
	columns, err := indexHeader(header)
	if err != nil {
		return nil, err
	}

	var records []AttendeeRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read attendee row: %w", err)
		}
		line, _ := reader.FieldPos(0)
		records = append(records, AttendeeRecord{
			Line:         line + lineOffset,
			FirstName:    columns.cell(row, ColumnFirstName),
			LastName:     columns.cell(row, ColumnLastName),
			Email:        columns.cell(row, ColumnEmail),
			LeaveTimeRaw: columns.cell(row, ColumnLeaveTime),
			IsGuest:      columns.cell(row, ColumnIsGuest),
		})
	}
	return records, nil
}
