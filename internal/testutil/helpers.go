package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// WriteUtterancesFile writes a batch input file with one utterance per
// line and returns its path.
func WriteUtterancesFile(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "utterances.txt")
	CreateTestFile(t, path, []byte(strings.Join(lines, "\n")+"\n"))
	return path
}

// SampleUtterances returns code-switched test inputs covering the
// script mixes the detector has to handle.
func SampleUtterances() []string {
	return []string{
		"Hello, كيف حالك؟",
		"je suis very tired today",
		"Das ist ein test",
		"привет my friend",
		"quiero un coffee por favor",
	}
}

// CaptureOutput captures stdout/stderr during test execution
func CaptureOutput(t *testing.T, f func()) (stdout, stderr string) {
	t.Helper()

	// Save current stdout/stderr
	oldStdout := os.Stdout
	oldStderr := os.Stderr

	// Create pipes
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()

	// Redirect stdout/stderr
	os.Stdout = wOut
	os.Stderr = wErr

	// Run function
	f()

	// Close writers
	wOut.Close()
	wErr.Close()

	// Read output
	outBytes := make([]byte, 4096)
	errBytes := make([]byte, 4096)

	nOut, _ := rOut.Read(outBytes)
	nErr, _ := rErr.Read(errBytes)

	// Restore stdout/stderr
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	return string(outBytes[:nOut]), string(errBytes[:nErr])
}
