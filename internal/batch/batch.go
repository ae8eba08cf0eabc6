package batch

import (
	"fmt"
	"os"
	"strings"
)

// Entry is one utterance read from a batch file, with an optional
// per-line source language override.
type Entry struct {
	Text string
	// Source is a language name ("French") or empty for auto.
	Source string
}

// ReadBatchFile reads utterances from a file, one per line.
// Supported formats:
//   - plain text: "Hello, كيف حالك؟" (source auto-detected)
//   - with source: "French :: bonjour tout le monde"
//
// Blank lines and lines starting with '#' are skipped.
func ReadBatchFile(filename string) ([]Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []Entry
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if source, text, ok := strings.Cut(line, "::"); ok {
			source = strings.TrimSpace(source)
			text = strings.TrimSpace(text)
			if text == "" {
				continue
			}
			entries = append(entries, Entry{Text: text, Source: source})
			continue
		}

		entries = append(entries, Entry{Text: line})
	}

	return entries, nil
}
