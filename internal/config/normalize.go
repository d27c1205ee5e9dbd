package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeDigest()
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeDigest() {
	values := make([]string, 0, len(c.Digest.GuestValues))
	for _, v := range c.Digest.GuestValues {
		// Guest matching stays exact, so only surrounding blanks are dropped.
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	c.Digest.GuestValues = values

	layouts := make([]string, 0, len(c.Digest.TimestampLayouts))
	for _, l := range c.Digest.TimestampLayouts {
		if l = strings.TrimSpace(l); l != "" {
			layouts = append(layouts, l)
		}
	}
	c.Digest.TimestampLayouts = layouts

	c.Digest.Timezone = strings.TrimSpace(c.Digest.Timezone)
	if c.Digest.Timezone == "" {
		c.Digest.Timezone = defaultTimezone
	}
	c.Digest.CutoffDate = strings.TrimSpace(c.Digest.CutoffDate)
	c.Digest.CutoffTime = strings.TrimSpace(c.Digest.CutoffTime)
}

func (c *Config) normalizeOutput() error {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	c.Output.Suffix = strings.TrimSpace(c.Output.Suffix)
	if c.Output.Suffix == "" {
		c.Output.Suffix = defaultOutputSuffix
	}
	var err error
	if c.Output.Dir, err = expandPath(strings.TrimSpace(c.Output.Dir)); err != nil {
		return fmt.Errorf("output.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}

	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
		c.Logging.Format = "json"
	default:
		c.Logging.Format = format
	}

	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	switch level {
	case "":
		c.Logging.Level = defaultLogLevel
	case "warning":
		c.Logging.Level = "warn"
	default:
		c.Logging.Level = level
	}
	return nil
}
