package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"minimax/internal/models"
)

// runCLI clears the MiniMax environment, runs the CLI with args and
// returns the exit code with captured stdout and stderr.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "LOG_FORMAT",
		"MINIMAX_STYLES", "MINIMAX_FORMAT", "MINIMAX_SEED", "MINIMAX_TONE_DOWN",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("LOG_LEVEL", "warn")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runCLI(t, "--version")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if stdout != "MiniMax 1.0.0\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRun_TextToConsole(t *testing.T) {
	code, stdout, stderr := runCLI(t, "How to start a morning routine", "--styles", "educational,trendy")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}
	for _, want := range []string{
		"CREATOR STYLE: EDUCATIONAL",
		"CREATOR STYLE: TRENDY",
		"Generated 2 unique content variations",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q", want)
		}
	}
	if strings.Contains(stdout, "CREATOR STYLE: LIFESTYLE") {
		t.Error("unselected style should not be rendered")
	}
}

func TestRun_EmptyPrompt(t *testing.T) {
	code, stdout, stderr := runCLI(t, "   ")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if stdout != "" {
		t.Errorf("stdout should be empty, got %q", stdout)
	}
	if stderr != "Error: prompt cannot be empty\n" {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRun_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no prompt", nil},
		{"two prompts", []string{"one", "two"}},
		{"unknown format", []string{"Cooking hack", "--format", "pdf"}},
		{"bad seed", []string{"Cooking hack", "--seed", "-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tt.args...)
			if code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if !strings.HasPrefix(stderr, "Error: ") {
				t.Errorf("stderr = %q, want an Error: line", stderr)
			}
		})
	}
}

func TestRun_UnknownStylesFallBackToAll(t *testing.T) {
	code, stdout, stderr := runCLI(t, "Cooking hack", "--styles", "bogus", "--format", "json")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stderr, "unknown style, skipping") || !strings.Contains(stderr, "style=bogus") {
		t.Errorf("expected a warning for the unknown style, stderr: %s", stderr)
	}

	var report models.Report
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("stdout is not a JSON report: %v", err)
	}
	if len(report.Results) != len(models.AllStyles()) {
		t.Errorf("results = %d, want all %d styles", len(report.Results), len(models.AllStyles()))
	}
}

func TestRun_SeedIsReproducible(t *testing.T) {
	_, first, _ := runCLI(t, "My coding journey", "--seed", "7", "--format", "markdown")
	_, second, _ := runCLI(t, "My coding journey", "--seed", "7", "--format", "markdown")
	if first == "" || first != second {
		t.Error("the same seed should render the same drafts")
	}
}

func TestRun_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")

	code, stdout, stderr := runCLI(t, "Product review", "--output", path)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}
	if stdout != "✅ Results saved to: "+path+"\n" {
		t.Errorf("stdout = %q", stdout)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "CREATOR STYLE: STORYTELLING") {
		t.Error("saved file should contain the text report")
	}
}

func TestRun_OutputDirectory(t *testing.T) {
	dir := t.TempDir()

	code, stdout, stderr := runCLI(t, "Product review!", "-o", dir, "-f", "html")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	want := filepath.Join(dir, "product-review.html")
	if stdout != "✅ Results saved to: "+want+"\n" {
		t.Errorf("stdout = %q", stdout)
	}
	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "<h2") {
		t.Error("saved HTML page should contain style sections")
	}
}

func TestRun_ConfigDefaults(t *testing.T) {
	t.Setenv("MINIMAX_STYLES", "")
	code, stdout, stderr := runCLI(t, "Cooking hack")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, "Generated 6 unique content variations") {
		t.Error("default config should render every style as text")
	}

	// Environment values become flag defaults.
	for key, val := range map[string]string{
		"APP_ENV": "", "LOG_FORMAT": "", "LOG_LEVEL": "warn",
		"MINIMAX_FORMAT": "yaml", "MINIMAX_STYLES": "lifestyle", "MINIMAX_SEED": "", "MINIMAX_TONE_DOWN": "",
	} {
		t.Setenv(key, val)
	}
	var out, errOut bytes.Buffer
	if code := run(context.Background(), []string{"Cooking hack"}, &out, &errOut); code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "style: lifestyle") || strings.Contains(out.String(), "style: trendy") {
		t.Errorf("expected a YAML report for lifestyle only:\n%s", out.String())
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"Cooking hack"}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "LOG_FORMAT") {
		t.Errorf("stderr = %q", stderr.String())
	}
}
