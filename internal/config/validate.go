package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// OutputFormats lists the accepted output.format values.
var OutputFormats = []string{"csv", "xlsx", "json", "table"}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDigest(); err != nil {
		return err
	}
	if err := c.validateDetection(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDigest() error {
	if c.Digest.SkipRows < 0 || c.Digest.SkipRows > maxSkipRows {
		return fmt.Errorf("digest.skip_rows must be between 0 and %d", maxSkipRows)
	}
	if len(c.Digest.GuestValues) == 0 {
		return errors.New("digest.guest_values must contain at least one value")
	}
	if !strings.EqualFold(c.Digest.Timezone, "local") {
		if _, err := time.LoadLocation(c.Digest.Timezone); err != nil {
			return fmt.Errorf("digest.timezone %q: %w", c.Digest.Timezone, err)
		}
	}
	if c.Digest.CutoffTime != "" && c.Digest.CutoffDate == "" {
		return errors.New("digest.cutoff_time requires digest.cutoff_date")
	}
	return nil
}

func (c *Config) validateDetection() error {
	if c.Detection.SampleBytes <= 0 || c.Detection.SampleBytes > defaultSampleBytes {
		return fmt.Errorf("detection.sample_bytes must be between 1 and %d", defaultSampleBytes)
	}
	if c.Detection.MinConfidence < 0 || c.Detection.MinConfidence > 100 {
		return errors.New("detection.min_confidence must be between 0 and 100")
	}
	return nil
}

func (c *Config) validateOutput() error {
	for _, f := range OutputFormats {
		if c.Output.Format == f {
			return nil
		}
	}
	return fmt.Errorf("output.format must be one of %s", strings.Join(OutputFormats, ", "))
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
}
