package attendees

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DefaultLayouts are the leave time formats Zoom has used in attendee
// reports, tried in order before falling back to lenient parsing.
var DefaultLayouts = []string{
	"2006-01-02 15:04:05",
	"01/02/2006 03:04:05 PM",
	"Jan 2, 2006 03:04:05 PM",
	"Jan 2, 2006 15:04:05",
	time.RFC3339,
}

var errEmptyTimestamp = errors.New("empty value")

// TimestampParser converts report timestamps into instants in a fixed
// location. Values without an explicit offset are read in that location.
type TimestampParser struct {
	layouts  []string
	location *time.Location
	lenient  bool
}

// NewTimestampParser builds a parser. A nil location means time.Local and an
// empty layout list means DefaultLayouts. When lenient is true, values that
// match no layout are handed to dateparse.
func NewTimestampParser(layouts []string, location *time.Location, lenient bool) *TimestampParser {
	if len(layouts) == 0 {
		layouts = DefaultLayouts
	}
	if location == nil {
		location = time.Local
	}
	cp := make([]string, len(layouts))
	copy(cp, layouts)
	return &TimestampParser{layouts: cp, location: location, lenient: lenient}
}

// Parse reads a single timestamp.
func (p *TimestampParser) Parse(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, errEmptyTimestamp
	}
	for _, layout := range p.layouts {
		if ts, err := time.ParseInLocation(layout, trimmed, p.location); err == nil {
			return ts, nil
		}
	}
	if !p.lenient || !strings.ContainsAny(trimmed, "0123456789") {
		return time.Time{}, fmt.Errorf("no layout matches %q", trimmed)
	}
	ts, err := dateparse.ParseIn(trimmed, p.location)
	if err != nil {
		return time.Time{}, err
	}
	return ts, nil
}

// normalize fills LeaveTime for each record. Failures are returned per row
// and leave the record's timestamp missing.
func (p *TimestampParser) normalize(records []AttendeeRecord) []*TimestampParseError {
	var failures []*TimestampParseError
	for i := range records {
		ts, err := p.Parse(records[i].LeaveTimeRaw)
		if err != nil {
			records[i].LeaveTime = Timestamp{}
			failures = append(failures, &TimestampParseError{
				Line:  records[i].Line,
				Value: records[i].LeaveTimeRaw,
				Err:   err,
			})
			continue
		}
		records[i].LeaveTime = Timestamp{Time: ts, Valid: true}
	}
	return failures
}

var (
	cutoffDateLayouts  = []string{"2006-01-02", "01/02/2006", "2006/01/02"}
	cutoffClockLayouts = []string{"15:04:05", "15:04", "03:04:05 PM", "03:04 PM", "3:04 PM", "3:04PM"}
)

// ParseCutoff combines separate date and time-of-day inputs into a cutoff.
// An empty clock means midnight.
func (p *TimestampParser) ParseCutoff(date, clock string) (time.Time, error) {
	raw := strings.TrimSpace(date + " " + clock)
	day, err := parseFirst(cutoffDateLayouts, strings.TrimSpace(date), p.location)
	if err != nil {
		return time.Time{}, &CutoffParseError{Value: raw, Err: fmt.Errorf("date: %w", err)}
	}
	clock = strings.TrimSpace(clock)
	if clock == "" {
		return day, nil
	}
	tod, err := parseFirst(cutoffClockLayouts, strings.ToUpper(clock), time.UTC)
	if err != nil {
		return time.Time{}, &CutoffParseError{Value: raw, Err: fmt.Errorf("time: %w", err)}
	}
	return time.Date(day.Year(), day.Month(), day.Day(), tod.Hour(), tod.Minute(), tod.Second(), 0, p.location), nil
}

// ParseCutoffValue reads a cutoff given as a single date-time string using
// the same rules as leave times.
func (p *TimestampParser) ParseCutoffValue(value string) (time.Time, error) {
	ts, err := p.Parse(value)
	if err != nil {
		return time.Time{}, &CutoffParseError{Value: value, Err: err}
	}
	return ts, nil
}

func parseFirst(layouts []string, value string, loc *time.Location) (time.Time, error) {
	if value == "" {
		return time.Time{}, errEmptyTimestamp
	}
	var lastErr error
	for _, layout := range layouts {
		ts, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
