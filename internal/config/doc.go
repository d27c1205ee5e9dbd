// Package config loads, normalizes, and validates zoomdigest configuration.
//
// It supplies defaults matching the usual Zoom webinar export layout, reads
// TOML files, and applies ZOOMDIGEST_* environment overrides. The Config type
// centralizes the digest knobs (header skip, guest values, timezone, cutoff),
// charset detection thresholds, output format, and log settings.
//
// Always obtain settings through this package so downstream code receives
// trimmed values, canonical formats, and clear validation errors.
package config
