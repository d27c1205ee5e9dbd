package attendees

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"

	"zoomdigest/internal/charset"
	"zoomdigest/internal/logging"
)

// MaxHeaderSkipRows is the largest number of leading lines a caller may skip.
const MaxHeaderSkipRows = 50

// DefaultGuestValues holds the Is Guest values that qualify an attendee.
var DefaultGuestValues = []string{"Yes"}

// EncodingDetector infers the character encoding of raw export bytes.
type EncodingDetector interface {
	Detect(contents []byte) (charset.Detection, error)
}

// Request is one digest invocation.
type Request struct {
	Contents       []byte
	HeaderSkipRows int `validate:"min=0,max=50"`
	Cutoff         time.Time
}

// Stats counts what each stage removed.
type Stats struct {
	Rows               int `json:"rows"`
	UnparsedLeaveTimes int `json:"unparsed_leave_times"`
	Duplicates         int `json:"duplicates"`
	NonGuests          int `json:"non_guests"`
	MissingLeaveTime   int `json:"missing_leave_time"`
	BeforeCutoff       int `json:"before_cutoff"`
	Emitted            int `json:"emitted"`
}

// Result is a completed digest.
type Result struct {
	Records   []DigestedRecord
	Stats     Stats
	Detection charset.Detection
	// TimestampErrors lists the rows whose leave time degraded to missing.
	TimestampErrors []*TimestampParseError
}

// Options configures a Digester.
type Options struct {
	Detector    EncodingDetector
	Timestamps  *TimestampParser
	GuestValues []string
	Logger      *slog.Logger
}

// Digester reduces attendee exports to digests. It keeps no per-call state
// and is safe for concurrent use.
type Digester struct {
	detector   EncodingDetector
	timestamps *TimestampParser
	guests     map[string]struct{}
	validate   *validator.Validate
	logger     *slog.Logger
}

// New builds a Digester, filling unset options with defaults.
func New(opts Options) *Digester {
	detector := opts.Detector
	if detector == nil {
		detector = charset.NewDetector(charset.Options{})
	}
	timestamps := opts.Timestamps
	if timestamps == nil {
		timestamps = NewTimestampParser(nil, nil, true)
	}
	values := opts.GuestValues
	if len(values) == 0 {
		values = DefaultGuestValues
	}
	guests := make(map[string]struct{}, len(values))
	for _, v := range values {
		guests[v] = struct{}{}
	}
	return &Digester{
		detector:   detector,
		timestamps: timestamps,
		guests:     guests,
		validate:   validator.New(),
		logger:     logging.NewComponentLogger(opts.Logger, "digest"),
	}
}

// Digest runs the pipeline with default options.
func Digest(contents []byte, headerSkipRows int, cutoff time.Time) ([]DigestedRecord, error) {
	return New(Options{}).Digest(contents, headerSkipRows, cutoff)
}

// Digest returns the qualifying attendees of contents.
func (d *Digester) Digest(contents []byte, headerSkipRows int, cutoff time.Time) ([]DigestedRecord, error) {
	res, err := d.Run(Request{Contents: contents, HeaderSkipRows: headerSkipRows, Cutoff: cutoff})
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}

// Run executes every stage and reports per-stage statistics. On error no
// partial result is returned.
func (d *Digester) Run(req Request) (*Result, error) {
	if err := d.validateRequest(req); err != nil {
		return nil, err
	}

	detection, err := d.detector.Detect(req.Contents)
	if err != nil {
		return nil, &EncodingDetectionError{Err: err}
	}
	text, err := charset.Decode(req.Contents, detection.Encoding)
	if err != nil {
		return nil, &EncodingDetectionError{Err: err}
	}
	d.logger.Debug("encoding detected",
		logging.String("charset", detection.Charset),
		logging.Int("confidence", detection.Confidence),
	)

	records, err := parseTable(skipLines(text, req.HeaderSkipRows), req.HeaderSkipRows)
	if err != nil {
		return nil, fmt.Errorf("parse attendee table: %w", err)
	}

	failures := d.timestamps.normalize(records)
	for _, f := range failures {
		d.logger.Debug("leave time unparseable; row treated as missing",
			logging.Int("line", f.Line),
			logging.String("value", f.Value),
		)
	}

	stats := Stats{Rows: len(records), UnparsedLeaveTimes: len(failures)}
	latest := latestPerEmail(records)
	stats.Duplicates = len(records) - len(latest)

	digest := make([]DigestedRecord, 0, len(latest))
	for _, r := range latest {
		switch {
		case !d.isGuest(r.IsGuest):
			stats.NonGuests++
		case !r.LeaveTime.Valid:
			stats.MissingLeaveTime++
		case !r.LeaveTime.AtOrAfter(req.Cutoff):
			stats.BeforeCutoff++
		default:
			digest = append(digest, project(r))
		}
	}
	stats.Emitted = len(digest)

	d.logger.Info("attendee digest complete",
		logging.Int("rows", stats.Rows),
		logging.Int("duplicates", stats.Duplicates),
		logging.Int("non_guests", stats.NonGuests),
		logging.Int("missing_leave_time", stats.MissingLeaveTime),
		logging.Int("before_cutoff", stats.BeforeCutoff),
		logging.Int("emitted", stats.Emitted),
	)
	if stats.UnparsedLeaveTimes > 0 {
		logging.WarnWithContext(d.logger, "some leave times could not be parsed", "leave_time_unparsed",
			logging.Int("count", stats.UnparsedLeaveTimes),
			logging.String(logging.FieldImpact, "affected rows are excluded from the digest"),
			logging.String(logging.FieldErrorHint, "check digest.timestamp_layouts against the export"),
		)
	}

	return &Result{
		Records:         digest,
		Stats:           stats,
		Detection:       detection,
		TimestampErrors: failures,
	}, nil
}

func (d *Digester) validateRequest(req Request) error {
	if err := d.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: header skip rows must be between 0 and %d, got %d", ErrInvalidRequest, MaxHeaderSkipRows, req.HeaderSkipRows)
		}
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if req.Cutoff.IsZero() {
		return &CutoffParseError{Value: "", Err: errors.New("cutoff is required")}
	}
	return nil
}

func (d *Digester) isGuest(value string) bool {
	_, ok := d.guests[value]
	return ok
}

// latestPerEmail orders records by leave time (missing last, source order
// breaking ties) and keeps the final record for each email, preserving the
// sorted order of the survivors.
func latestPerEmail(records []AttendeeRecord) []AttendeeRecord {
	sorted := make([]AttendeeRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LeaveTime.Before(sorted[j].LeaveTime)
	})

	last := make(map[string]int, len(sorted))
	for i, r := range sorted {
		last[r.Email] = i
	}
	out := make([]AttendeeRecord, 0, len(last))
	for i, r := range sorted {
		if last[r.Email] == i {
			out = append(out, r)
		}
	}
	return out
}
