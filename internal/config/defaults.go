package config

const (
	defaultSkipRows          = 16
	defaultTimezone          = "Local"
	defaultLenientTimestamps = true
	defaultCutoffDate        = "2025-02-08"
	defaultCutoffTime        = "13:00"
	defaultSampleBytes       = 100_000
	defaultMinConfidence     = 10
	defaultOutputFormat      = "csv"
	defaultOutputSuffix      = "-digested"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"

	maxSkipRows = 50
	envPrefix   = "ZOOMDIGEST"
)

var defaultGuestValues = []string{"Yes"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Digest: Digest{
			SkipRows:          defaultSkipRows,
			GuestValues:       append([]string(nil), defaultGuestValues...),
			Timezone:          defaultTimezone,
			LenientTimestamps: defaultLenientTimestamps,
			CutoffDate:        defaultCutoffDate,
			CutoffTime:        defaultCutoffTime,
		},
		Detection: Detection{
			SampleBytes:   defaultSampleBytes,
			MinConfidence: defaultMinConfidence,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Suffix: defaultOutputSuffix,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
