package charset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"

	"zoomdigest/internal/charset"
)

func TestDetectRejectsEmptyInput(t *testing.T) {
	d := charset.NewDetector(charset.Options{})

	_, err := d.Detect(nil)
	require.ErrorIs(t, err, charset.ErrEmptyInput)
}

func TestDetectUTF8WithBOM(t *testing.T) {
	d := charset.NewDetector(charset.Options{})
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("First Name,Last Name\nZoë,Ångström\n")...)

	det, err := d.Detect(input)
	require.NoError(t, err)
	assert.Equal(t, "UTF-8", det.Charset)
	assert.Equal(t, 100, det.Confidence)

	decoded, err := charset.Decode(input, det.Encoding)
	require.NoError(t, err)
	assert.Equal(t, "First Name,Last Name\nZoë,Ångström\n", string(decoded))
}

func TestDetectUTF16LittleEndianWithBOM(t *testing.T) {
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String("Email,Is Guest\na@x.com,Yes\n")
	require.NoError(t, err)

	d := charset.NewDetector(charset.Options{})
	det, err := d.Detect([]byte(encoded))
	require.NoError(t, err)
	assert.Equal(t, "UTF-16LE", det.Charset)

	decoded, err := charset.Decode([]byte(encoded), det.Encoding)
	require.NoError(t, err)
	assert.Equal(t, "Email,Is Guest\na@x.com,Yes\n", string(decoded))
}

func TestDetectPlainASCIIShortCircuits(t *testing.T) {
	input := []byte("First Name,Last Name,Email,Leave Time,Is Guest\nA,B,a@x.com,2025-02-08 13:10:00,Yes\n")

	d := charset.NewDetector(charset.Options{})
	det, err := d.Detect(input)
	require.NoError(t, err)
	assert.Equal(t, "US-ASCII", det.Charset)
	assert.Equal(t, 100, det.Confidence)

	decoded, err := charset.Decode(input, det.Encoding)
	require.NoError(t, err)
	assert.Equal(t, string(input), string(decoded))
}

func TestDetectHonoursConfidenceFloor(t *testing.T) {
	d := charset.NewDetector(charset.Options{MinConfidence: 101})

	_, err := d.Detect([]byte("caf\xe9 cr\xe8me br\xfbl\xe9e"))
	require.ErrorIs(t, err, charset.ErrLowConfidence)
}

func TestDetectOnlyInspectsSamplePrefix(t *testing.T) {
	// A UTF-8 BOM prefix followed by bytes that are invalid UTF-8 past the sample window.
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte(strings.Repeat("a,b\n", 8))...)
	input = append(input, 0xFF, 0xFE, 0xFD)

	d := charset.NewDetector(charset.Options{SampleBytes: 16})
	det, err := d.Detect(input)
	require.NoError(t, err)
	assert.Equal(t, "UTF-8", det.Charset)
}

func TestDetectClampsSampleToDefault(t *testing.T) {
	// Only the first DefaultSampleBytes are inspected even when a larger sample is requested.
	input := []byte(strings.Repeat("a", charset.DefaultSampleBytes))
	input = append(input, []byte("caf\xe9")...)

	d := charset.NewDetector(charset.Options{SampleBytes: 5_000_000})
	det, err := d.Detect(input)
	require.NoError(t, err)
	assert.Equal(t, "US-ASCII", det.Charset)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "UTF-8", want: "utf-8"},
		{name: "ISO-8859-1", want: "windows-1252"},
		{name: "windows-1252", want: "windows-1252"},
		{name: "Shift_JIS", want: "shift_jis"},
		{name: "GB-18030", want: "gb18030"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := charset.Lookup(tt.name)
			require.NoError(t, err)
			got, err := htmlindex.Name(enc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupUnknownName(t *testing.T) {
	_, err := charset.Lookup("x-klingon")
	require.ErrorIs(t, err, charset.ErrUnsupported)

	_, err = charset.Lookup("  ")
	require.ErrorIs(t, err, charset.ErrUnsupported)
}

func TestDecodeLatin1(t *testing.T) {
	decoded, err := charset.Decode([]byte("Jos\xe9,Mu\xf1oz"), charmap.Windows1252)
	require.NoError(t, err)
	assert.Equal(t, "José,Muñoz", string(decoded))
}
