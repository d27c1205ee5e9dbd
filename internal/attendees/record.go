package attendees

import "time"

// Column headers of a Zoom attendee report that the digest reads.
const (
	ColumnFirstName = "First Name"
	ColumnLastName  = "Last Name"
	ColumnEmail     = "Email"
	ColumnLeaveTime = "Leave Time"
	ColumnIsGuest   = "Is Guest"
)

// RequiredColumns lists the headers every export must carry, in report order.
var RequiredColumns = []string{
	ColumnFirstName,
	ColumnLastName,
	ColumnEmail,
	ColumnLeaveTime,
	ColumnIsGuest,
}

// DigestHeader is the header row of a digest table.
var DigestHeader = []string{ColumnFirstName, ColumnLastName, ColumnEmail}

// Timestamp is a leave time that may be missing. The zero value is missing.
type Timestamp struct {
	Time  time.Time
	Valid bool
}

// Before orders timestamps ascending with missing values last.
func (t Timestamp) Before(other Timestamp) bool {
	switch {
	case !t.Valid:
		return false
	case !other.Valid:
		return true
	default:
		return t.Time.Before(other.Time)
	}
}

// AtOrAfter reports whether t is valid and not earlier than cutoff.
func (t Timestamp) AtOrAfter(cutoff time.Time) bool {
	return t.Valid && !t.Time.Before(cutoff)
}

// AttendeeRecord is one data row of the source export.
type AttendeeRecord struct {
	Line         int
	FirstName    string
	LastName     string
	Email        string
	LeaveTimeRaw string
	LeaveTime    Timestamp
	IsGuest      string
}

// DigestedRecord is the projection emitted for each qualifying attendee.
type DigestedRecord struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Row returns the record as cells in DigestHeader order.
func (r DigestedRecord) Row() []string {
	return []string{r.FirstName, r.LastName, r.Email}
}

func project(r AttendeeRecord) DigestedRecord {
	return DigestedRecord{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}
