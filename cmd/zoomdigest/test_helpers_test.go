package main

import (
	"bytes"
	"strings"
	"testing"

	"zoomdigest/internal/config"
	"zoomdigest/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	dir        string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	cfg := testsupport.NewConfig(t, opts...)
	return &cliTestEnv{
		cfg:        cfg,
		configPath: testsupport.WriteConfig(t, cfg),
		dir:        t.TempDir(),
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	return runCLIWithInput(t, args, configPath, nil)
}

func runCLIWithInput(t *testing.T, args []string, configPath string, stdin []byte) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if stdin != nil {
		cmd.SetIn(bytes.NewReader(stdin))
	}
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

// workedExample is a header-first export: one guest stays past 13:00, one
// non-guest, one unreadable leave time, and an early duplicate.
func workedExample(t *testing.T) []byte {
	return testsupport.CSV(t,
		[]string{"First Name", "Last Name", "Email", "Leave Time", "Is Guest"},
		[]string{"A", "B", "a@x.com", "2025-02-08 12:50:00", "Yes"},
		[]string{"A", "B", "a@x.com", "2025-02-08 13:10:00", "Yes"},
		[]string{"C", "D", "c@x.com", "2025-02-08 13:05:00", "No"},
		[]string{"E", "F", "e@x.com", "bad-date", "Yes"},
	)
}
