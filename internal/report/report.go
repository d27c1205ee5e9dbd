package report

import (
	"fmt"
	"io"
	"os"

	"zoomdigest/internal/attendees"
	"zoomdigest/internal/fileutil"
)

// utf8BOM helps Excel recognize UTF-8 CSV files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Options configures report output.
type Options struct {
	Format Format
	// BOM prefixes CSV output with a UTF-8 byte order mark.
	BOM bool
	// SheetName names the XLSX worksheet. Empty means DefaultSheetName.
	SheetName string
}

// Encode writes records to w in the requested format.
func Encode(w io.Writer, records []attendees.DigestedRecord, opts Options) error {
	switch opts.Format {
	case FormatCSV, "":
		return writeCSV(w, records, opts.BOM)
	case FormatXLSX:
		return writeXLSX(w, records, opts.SheetName)
	case FormatJSON:
		return writeJSON(w, records)
	default:
		return fmt.Errorf("unsupported output format %q", opts.Format)
	}
}

// WriteFile encodes records into path atomically.
func WriteFile(path string, records []attendees.DigestedRecord, opts Options) error {
	err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return Encode(w, records, opts)
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Write sends records to path, or to stdout when path is "-".
func Write(path string, stdout io.Writer, records []attendees.DigestedRecord, opts Options) error {
	if path == "-" {
		if stdout == nil {
			stdout = os.Stdout
		}
		return Encode(stdout, records, opts)
	}
	return WriteFile(path, records, opts)
}
