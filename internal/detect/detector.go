package detect

import (
	"regexp"
	"unicode"

	"github.com/pemistahl/lingua-go"

	"codeberg.org/snonux/polyglot/internal"
	"codeberg.org/snonux/polyglot/internal/language"
)

const (
	// minLatinTokenLen is the shortest Latin token worth running
	// through the statistical detector. Below this ("my", "is", "el")
	// the guess is noise and the context language wins.
	minLatinTokenLen = 4

	// maxDetectionRunes caps the text handed to lingua; more input
	// does not improve whole-utterance classification.
	maxDetectionRunes = 256
)

// linguaTags maps lingua's language constants to our tags. Only
// Latin-script languages appear here: everything else is decided by
// script before lingua is consulted.
var linguaTags = map[lingua.Language]language.Tag{
	lingua.English:    "eng_Latn",
	lingua.French:     "fra_Latn",
	lingua.Spanish:    "spa_Latn",
	lingua.German:     "deu_Latn",
	lingua.Italian:    "ita_Latn",
	lingua.Portuguese: "por_Latn",
	lingua.Turkish:    "tur_Latn",
	lingua.Dutch:      "nld_Latn",
	lingua.Polish:     "pol_Latn",
	lingua.Swedish:    "swe_Latn",
	lingua.Indonesian: "ind_Latn",
	lingua.Vietnamese: "vie_Latn",
}

// tokenRe splits an utterance into words and punctuation runs.
var tokenRe = regexp.MustCompile(`[\p{L}\p{N}]+|[^\p{L}\p{N}\s]+`)

// WordLang is one token of an utterance with its detected language.
// Punct marks punctuation runs, which carry no language.
type WordLang struct {
	Word  string
	Tag   language.Tag
	Punct bool
}

// Analysis is the word-level breakdown of a (possibly code-switched)
// utterance. Languages is ordered most frequent first.
type Analysis struct {
	Words         []WordLang
	Languages     []language.Tag
	LowConfidence bool
}

// Empty reports whether the analysis found no language-bearing tokens.
func (a Analysis) Empty() bool {
	return len(a.Languages) == 0
}

// Dominant returns the most frequent language, or Unknown.
func (a Analysis) Dominant() language.Tag {
	if len(a.Languages) == 0 {
		return language.Unknown
	}
	return a.Languages[0]
}

// Contains reports whether tag was detected anywhere in the utterance.
func (a Analysis) Contains(tag language.Tag) bool {
	for _, t := range a.Languages {
		if t == tag {
			return true
		}
	}
	return false
}

// Detector classifies utterances and individual tokens.
type Detector struct {
	lingua lingua.LanguageDetector
}

// New creates a Detector. Building the lingua models is not free, so
// callers keep one Detector for the process lifetime.
func New() *Detector {
	languages := make([]lingua.Language, 0, len(linguaTags))
	for l := range linguaTags {
		languages = append(languages, l)
	}
	return &Detector{
		lingua: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			WithPreloadedLanguageModels().
			Build(),
	}
}

// Detect returns the dominant language of text. Empty or
// whitespace-only input yields language.Unknown, never an error.
func (d *Detector) Detect(text string) language.Tag {
	return d.Analyze(text).Dominant()
}

// Analyze produces the word-level language breakdown of text.
// Tokens are classified script first; Latin tokens of useful length
// go through lingua; short Latin tokens inherit the context language,
// which starts as English like the dominant web vocabulary does.
func (d *Detector) Analyze(text string) Analysis {
	text = internal.NormalizeWhitespace(text)
	if text == "" {
		return Analysis{}
	}

	var words []WordLang
	counts := make(map[language.Tag]int)
	order := []language.Tag{}
	context := language.English
	latinFallbacks := 0

	for _, tok := range tokenRe.FindAllString(text, -1) {
		if isPunct(tok) {
			words = append(words, WordLang{Word: tok, Punct: true})
			continue
		}

		tag, guessed := d.detectToken(tok, context)
		if guessed {
			latinFallbacks++
		}
		words = append(words, WordLang{Word: tok, Tag: tag})
		context = tag

		if counts[tag] == 0 {
			order = append(order, tag)
		}
		counts[tag]++
	}

	// Order languages most frequent first, stable on first appearance.
	langs := make([]language.Tag, len(order))
	copy(langs, order)
	for i := 0; i < len(langs); i++ {
		for j := i + 1; j < len(langs); j++ {
			if counts[langs[j]] > counts[langs[i]] {
				langs[i], langs[j] = langs[j], langs[i]
			}
		}
	}

	wordCount := 0
	for _, w := range words {
		if !w.Punct {
			wordCount++
		}
	}

	return Analysis{
		Words:     words,
		Languages: langs,
		// A single word, or an utterance classified mostly by
		// fallback, is a guess rather than a detection.
		LowConfidence: wordCount < 2 || latinFallbacks*2 > wordCount,
	}
}

// detectToken classifies one token. The second return value reports
// whether the tag is a fallback guess rather than a detection.
func (d *Detector) detectToken(tok string, context language.Tag) (language.Tag, bool) {
	if tag := tagByScript(tok); tag != language.Unknown {
		return tag, false
	}

	if !isLatin(tok) || len([]rune(tok)) < minLatinTokenLen {
		return context, true
	}

	truncated := internal.TruncateRunes(tok, maxDetectionRunes)
	if lang, ok := d.lingua.DetectLanguageOf(truncated); ok {
		if tag, known := linguaTags[lang]; known {
			return tag, false
		}
	}
	return context, true
}

func isPunct(tok string) bool {
	for _, r := range tok {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return false
		}
	}
	return tok != ""
}
