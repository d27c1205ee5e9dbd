package charset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultSampleBytes bounds how much of the input the detector inspects.
const DefaultSampleBytes = 100_000

var (
	// ErrEmptyInput is returned when there are no bytes to inspect.
	ErrEmptyInput = errors.New("input is empty")
	// ErrUndetermined is returned when the detector produces no candidate.
	ErrUndetermined = errors.New("no charset candidate")
	// ErrLowConfidence is returned when the best candidate scores below the configured floor.
	ErrLowConfidence = errors.New("charset confidence below threshold")
	// ErrUnsupported is returned when a detected charset has no decoder.
	ErrUnsupported = errors.New("unsupported charset")
)

// Detection describes the encoding chosen for an input.
type Detection struct {
	Charset    string
	Language   string
	Confidence int
	Encoding   encoding.Encoding
}

// Options configures a Detector.
type Options struct {
	SampleBytes   int
	MinConfidence int
}

// Detector infers encodings from byte prefixes. It is safe for concurrent use.
type Detector struct {
	sampleBytes   int
	minConfidence int
	text          *chardet.Detector
}

// NewDetector builds a Detector. SampleBytes outside (0, DefaultSampleBytes]
// is clamped to DefaultSampleBytes.
func NewDetector(opts Options) *Detector {
	sample := opts.SampleBytes
	if sample <= 0 || sample > DefaultSampleBytes {
		sample = DefaultSampleBytes
	}
	minConfidence := opts.MinConfidence
	if minConfidence < 0 {
		minConfidence = 0
	}
	return &Detector{
		sampleBytes:   sample,
		minConfidence: minConfidence,
		text:          chardet.NewTextDetector(),
	}
}

// Detect inspects at most SampleBytes of contents and returns the resolved encoding.
func (d *Detector) Detect(contents []byte) (Detection, error) {
	sample := contents
	if len(sample) > d.sampleBytes {
		sample = sample[:d.sampleBytes]
	}
	if len(sample) == 0 {
		return Detection{}, ErrEmptyInput
	}

	if isASCII(sample) {
		return Detection{Charset: "US-ASCII", Confidence: 100, Encoding: unicode.UTF8}, nil
	}

	candidates, err := d.text.DetectAll(sample)
	if err != nil || len(candidates) == 0 {
		if err == nil {
			err = errors.New("detector returned no result")
		}
		return Detection{}, fmt.Errorf("%w: %v", ErrUndetermined, err)
	}

	var unsupported []string
	for _, c := range candidates {
		if c.Confidence < d.minConfidence {
			break
		}
		enc, err := Lookup(c.Charset)
		if err != nil {
			unsupported = append(unsupported, c.Charset)
			continue
		}
		return Detection{
			Charset:    c.Charset,
			Language:   c.Language,
			Confidence: c.Confidence,
			Encoding:   enc,
		}, nil
	}
	if len(unsupported) > 0 {
		return Detection{}, fmt.Errorf("%w: %s", ErrUnsupported, strings.Join(unsupported, ", "))
	}
	best := candidates[0]
	return Detection{}, fmt.Errorf("%w: %s scored %d, need %d", ErrLowConfidence, best.Charset, best.Confidence, d.minConfidence)
}

// isASCII reports whether sample is 7-bit text without ISO-2022 escapes.
func isASCII(sample []byte) bool {
	for _, b := range sample {
		if b >= 0x80 || b == 0x1B || b == 0x00 {
			return false
		}
	}
	return true
}

// detector names that neither index recognizes verbatim
var charsetAliases = map[string]string{
	"gb-18030":     "gb18030",
	"iso-8859-8-i": "iso-8859-8",
	"ibm420_ltr":   "ibm420",
	"ibm420_rtl":   "ibm420",
	"ibm424_ltr":   "ibm424",
	"ibm424_rtl":   "ibm424",
}

// Lookup resolves a charset name to an encoding using the WHATWG index first
// and the IANA registry second.
func Lookup(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnsupported)
	}
	if alias, ok := charsetAliases[key]; ok {
		key = alias
	}
	if enc, err := htmlindex.Get(key); err == nil {
		return enc, nil
	}
	enc, err := ianaindex.IANA.Encoding(key)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, name)
	}
	return enc, nil
}

// Decode converts contents to UTF-8. A leading byte order mark overrides enc
// and is stripped from the result.
func Decode(contents []byte, enc encoding.Encoding) ([]byte, error) {
	if enc == nil {
		return nil, fmt.Errorf("%w: nil encoding", ErrUnsupported)
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), contents)
	if err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	return out, nil
}
