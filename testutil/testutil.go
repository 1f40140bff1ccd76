// Package testutil provides helpers shared by the issuereport test suites:
// capturing command output and writing fixture files.
package testutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CaptureOutput captures stdout while fn runs and returns it.
// The original stdout is always restored. An error from fn is logged, not
// failed, so callers can assert on output of failing commands.
//
// Example:
//
//	output := testutil.CaptureOutput(t, cmd.Execute)
//	if !strings.Contains(output, "https://github.com/") {
//	    t.Error("expected URL in output")
//	}
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	// Buffered so the reader goroutine never leaks.
	outCh := make(chan string, 1)
	go func() {
		var output strings.Builder
		_, _ = io.Copy(&output, r)
		outCh <- output.String()
	}()

	fnErr := fn()

	if err := w.Close(); err != nil {
		t.Logf("Failed to close pipe writer: %v", err)
	}
	os.Stdout = origStdout
	output := <-outCh

	if fnErr != nil {
		t.Logf("Command error: %v", fnErr)
	}
	return output
}

// WriteFile writes content to name inside a per-test temporary directory
// and returns the full path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
