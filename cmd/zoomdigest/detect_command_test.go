package main

import (
	"encoding/json"
	"testing"

	"zoomdigest/internal/testsupport"
)

func TestDetectReportsCharset(t *testing.T) {
	env := setupCLITestEnv(t)
	input := testsupport.WriteExport(t, env.dir, "bom.csv", append([]byte("\xEF\xBB\xBF"), workedExample(t)...))

	out, _, err := runCLI(t, []string{"detect", input}, env.configPath)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	requireContains(t, out, "Encoding:")
	requireContains(t, out, "UTF-8")
	requireContains(t, out, "100%")
}

func TestDetectJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	input := testsupport.WriteExport(t, env.dir, "plain.csv", workedExample(t))

	out, _, err := runCLI(t, []string{"detect", input, "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	var payload detectOutput
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode json: %v (%q)", err, out)
	}
	if payload.Charset != "US-ASCII" || payload.Confidence != 100 {
		t.Fatalf("unexpected detection: %+v", payload)
	}
	if payload.Path != input {
		t.Fatalf("unexpected path: %q", payload.Path)
	}
}

func TestDetectEmptyFileFails(t *testing.T) {
	env := setupCLITestEnv(t)
	input := testsupport.WriteExport(t, env.dir, "empty.csv", nil)

	_, stderr, err := runCLI(t, []string{"detect", input}, env.configPath)
	if err == nil {
		t.Fatal("expected detection error")
	}
	requireContains(t, stderr, "encoding detection failed")
}
