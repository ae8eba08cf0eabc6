package translate

import (
	"strings"
	"unicode"

	"codeberg.org/snonux/polyglot/internal"
	"codeberg.org/snonux/polyglot/internal/language"
)

// Candidate-output scoring. Mixed-language input gets translated once
// per plausible source language; the score decides which output wins.
// Higher is better: complete translations that end in terminal
// punctuation and carry no leftover foreign-script fragments rank
// first.

// scriptCounts tallies letters per script family in a string.
type scriptCounts struct {
	arabic   int
	latin    int
	cyrillic int
	cjk      int
}

func countScripts(text string) scriptCounts {
	var c scriptCounts
	for _, r := range text {
		switch {
		case unicode.In(r, unicode.Arabic):
			c.arabic++
		case unicode.In(r, unicode.Latin):
			c.latin++
		case unicode.In(r, unicode.Cyrillic):
			c.cyrillic++
		case unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul):
			c.cjk++
		}
	}
	return c
}

// leftoverScripts counts letters whose script should not appear in
// output of the target language. target=Arabic penalizes Latin,
// Cyrillic and CJK leftovers; target=English penalizes Arabic,
// Cyrillic and CJK; and so on.
func leftoverScripts(text string, target language.Tag) int {
	if text == "" {
		return 999
	}

	c := countScripts(text)
	switch {
	case strings.HasSuffix(string(target), "_Arab"):
		return c.latin + c.cyrillic + c.cjk
	case strings.HasSuffix(string(target), "_Latn"):
		return c.arabic + c.cyrillic + c.cjk
	case strings.HasSuffix(string(target), "_Cyrl"):
		return c.latin + c.arabic + c.cjk
	case strings.HasSuffix(string(target), "_Hans"),
		strings.HasSuffix(string(target), "_Hant"),
		strings.HasSuffix(string(target), "_Jpan"),
		strings.HasSuffix(string(target), "_Hang"):
		return c.latin + c.arabic + c.cyrillic
	default:
		// Other scripts (Thai, Devanagari, Hebrew, ...): Latin and
		// Arabic are the leftovers that actually occur in practice.
		return c.latin + c.arabic
	}
}

// scoreTranslation rates a candidate output against its source.
// Rewards completeness (length ratio, terminal punctuation) and
// penalizes leftover foreign scripts and suspiciously short output.
func scoreTranslation(source, translation string, target language.Tag) float64 {
	if translation == "" {
		return -999
	}

	source = internal.NormalizeWhitespace(source)
	translation = internal.NormalizeWhitespace(translation)

	srcLen := len([]rune(source))
	if srcLen == 0 {
		srcLen = 1
	}
	ratio := float64(len([]rune(translation))) / float64(srcLen)

	endBonus := 0.0
	if strings.ContainsRune(".!?؟。", []rune(translation)[len([]rune(translation))-1]) {
		endBonus = 0.25
	}

	leftoverPenalty := float64(leftoverScripts(translation, target)) * 0.02

	shortPenalty := 0.0
	if ratio < 0.55 {
		shortPenalty = 0.7
	}

	return (ratio + endBonus) - (leftoverPenalty + shortPenalty)
}
