package testsupport

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

// AttendeeHeader is the header row of a Zoom attendee details block.
var AttendeeHeader = []string{
	"Attended", "User Name (Original Name)", "First Name", "Last Name", "Email",
	"Registration Time", "Approval Status", "Join Time", "Leave Time",
	"Time in Session (minutes)", "Is Guest", "Country/Region Name",
}

// Attendee is one row of a generated export.
type Attendee struct {
	FirstName string
	LastName  string
	Email     string
	LeaveTime string
	IsGuest   string
}

func (a Attendee) row() []string {
	return []string{
		"Yes", a.FirstName + " " + a.LastName, a.FirstName, a.LastName, a.Email,
		"02/01/2025 09:00:00 AM", "approved", "02/08/2025 12:00:00 PM", a.LeaveTime,
		"60", a.IsGuest, "United States",
	}
}

// preamble mimics the report summary Zoom writes before the attendee table.
var preamble = [][]string{
	{"Attendee Report"},
	{"Report Generated:", "02/08/2025 03:00:00 PM"},
	{"Topic", "Webinar ID", "Actual Start Time", "Actual Duration (minutes)", "# Registered", "# Cancelled registrations", "Unique Viewers", "Total Users", "Max Concurrent Views"},
	{"Quarterly Pitch", "812 3456 7890", "02/08/2025 12:00:00 PM", "90", "120", "3", "80", "95", "70"},
	{},
	{"Host Details"},
	{"Attended", "User Name (Original Name)", "Email", "Join Time", "Leave Time", "Time in Session (minutes)", "Country/Region Name"},
	{"Yes", "Host", "host@example.com", "02/08/2025 11:55:00 AM", "02/08/2025 01:40:00 PM", "105", "United States"},
	{},
	{"Panelist Details"},
	{"Attended", "User Name (Original Name)", "Email", "Join Time", "Leave Time", "Time in Session (minutes)", "Country/Region Name"},
	{"Yes", "Panel", "panel@example.com", "02/08/2025 11:58:00 AM", "02/08/2025 01:35:00 PM", "97", "United States"},
	{},
	{"Attendee Details"},
}

// PreambleLines is the number of lines ZoomExport writes before the attendee header.
var PreambleLines = len(preamble)

// ZoomExport renders a full attendee report with the summary preamble.
func ZoomExport(t testing.TB, attendees ...Attendee) []byte {
	t.Helper()

	var buf bytes.Buffer
	for _, line := range preamble {
		if len(line) == 0 {
			buf.WriteString("\n")
			continue
		}
		writeRows(t, &buf, [][]string{line})
	}
	rows := [][]string{AttendeeHeader}
	for _, a := range attendees {
		rows = append(rows, a.row())
	}
	writeRows(t, &buf, rows)
	return buf.Bytes()
}

// CSV renders rows verbatim.
func CSV(t testing.TB, rows ...[]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	writeRows(t, &buf, rows)
	return buf.Bytes()
}

// WriteExport stores contents under dir and returns the file path.
func WriteExport(t testing.TB, dir, name string, contents []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func writeRows(t testing.TB, buf *bytes.Buffer, rows [][]string) {
	t.Helper()

	w := csv.NewWriter(buf)
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("write csv rows: %v", err)
	}
}
