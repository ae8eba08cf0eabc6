package internal

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeWhitespace collapses runs of whitespace into single spaces
// and trims the result. Model backends behave badly on text with
// embedded newlines and double spaces, so every utterance passes
// through here before translation.
func NormalizeWhitespace(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// TruncateRunes shortens s to at most n runes. Used to cap the text
// handed to the language detector, which gains nothing from more than
// a few hundred characters.
func TruncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
