package attendees

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRequest marks digest requests rejected before any input is read.
var ErrInvalidRequest = errors.New("invalid digest request")

// EncodingDetectionError reports that the character encoding of the export
// could not be determined. The digest aborts; no default encoding is assumed.
type EncodingDetectionError struct {
	Err error
}

func (e *EncodingDetectionError) Error() string {
	if e.Err == nil {
		return "detect encoding: undetermined"
	}
	return "detect encoding: " + e.Err.Error()
}

func (e *EncodingDetectionError) Unwrap() error { return e.Err }

// SchemaError reports required columns absent from the header row.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("attendee export is missing required column(s): %s", strings.Join(e.Missing, ", "))
}

// TimestampParseError describes a Leave Time value that could not be parsed.
// It never aborts a digest; the row's leave time becomes missing instead.
type TimestampParseError struct {
	Line  int
	Value string
	Err   error
}

func (e *TimestampParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: parse leave time %q: %v", e.Line, e.Value, e.Err)
	}
	return fmt.Sprintf("parse leave time %q: %v", e.Value, e.Err)
}

func (e *TimestampParseError) Unwrap() error { return e.Err }

// CutoffParseError reports a cutoff that cannot be read as a date and time.
type CutoffParseError struct {
	Value string
	Err   error
}

func (e *CutoffParseError) Error() string {
	return fmt.Sprintf("parse cutoff %q: %v", e.Value, e.Err)
}

func (e *CutoffParseError) Unwrap() error { return e.Err }
