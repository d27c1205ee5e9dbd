package textutil

import (
	"path/filepath"
	"strings"
)

// fileNameReplacer replaces filesystem-unsafe characters with safe alternatives.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName replaces filesystem-unsafe characters in a filename.
// Slashes, backslashes, colons, and asterisks become dashes; other unsafe
// characters are removed. The result is trimmed of leading/trailing whitespace.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.TrimSpace(fileNameReplacer.Replace(name))
}

// DigestFileName names the digest of input: the input's base name without
// its extension, followed by suffix and ext. "webinar.csv" with suffix
// "-digested" and ext "csv" becomes "webinar-digested.csv".
func DigestFileName(input, suffix, ext string) string {
	base := filepath.Base(strings.TrimSpace(input))
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = SanitizeFileName(stem)
	if stem == "" || stem == "." || stem == "-" {
		stem = "attendees"
	}
	name := stem + SanitizeFileName(suffix)
	if ext = strings.TrimPrefix(strings.TrimSpace(ext), "."); ext != "" {
		name += "." + ext
	}
	return name
}
