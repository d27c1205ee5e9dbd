package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"zoomdigest/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose output directory is a per-test temp dir
// and whose timestamps are read in UTC so results do not depend on the host.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Digest.Timezone = "UTC"
	cfgVal.Output.Dir = filepath.Join(base, "out")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithSkipRows overrides digest.skip_rows.
func WithSkipRows(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Digest.SkipRows = n
	}
}

// WithCutoff overrides the default cutoff date and time.
func WithCutoff(date, clock string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Digest.CutoffDate = date
		b.cfg.Digest.CutoffTime = clock
	}
}

// WithOutputFormat overrides output.format.
func WithOutputFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Format = format
	}
}

// WriteConfig encodes cfg into a TOML file under a temp dir and returns its path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "zoomdigest.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
