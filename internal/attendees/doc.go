// Package attendees turns a Zoom webinar attendee report into a digest of
// guests who were still present at a cutoff time.
//
// A digest runs six ordered stages over an in-memory table: encoding
// detection, CSV parsing after a caller-chosen number of preamble lines,
// leave time normalization, per-email deduplication keeping the latest leave
// event, guest and cutoff filtering, and projection to first name, last name
// and email.
//
// Encoding and schema problems abort the digest with typed errors
// (EncodingDetectionError, SchemaError). Unparseable leave times only demote
// their row to a missing timestamp, which sorts last and never passes the
// cutoff filter.
package attendees
