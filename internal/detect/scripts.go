package detect

import (
	"unicode"

	"codeberg.org/snonux/polyglot/internal/language"
)

// scriptTag pairs a Unicode script range table with the tag assumed
// for text written in it. The assumption is a best guess: Cyrillic
// could be Ukrainian, Arabic script could be Urdu. The whole-utterance
// candidate scoring downstream tolerates these misattributions.
type scriptTag struct {
	ranges []*unicode.RangeTable
	tag    language.Tag
}

var scriptTags = []scriptTag{
	{[]*unicode.RangeTable{unicode.Arabic}, "arb_Arab"},
	{[]*unicode.RangeTable{unicode.Cyrillic}, "rus_Cyrl"},
	{[]*unicode.RangeTable{unicode.Greek}, "ell_Grek"},
	{[]*unicode.RangeTable{unicode.Hebrew}, "heb_Hebr"},
	{[]*unicode.RangeTable{unicode.Thai}, "tha_Thai"},
	{[]*unicode.RangeTable{unicode.Devanagari}, "hin_Deva"},
	{[]*unicode.RangeTable{unicode.Bengali}, "ben_Beng"},
	{[]*unicode.RangeTable{unicode.Tamil}, "tam_Taml"},
	{[]*unicode.RangeTable{unicode.Telugu}, "tel_Telu"},
	{[]*unicode.RangeTable{unicode.Ethiopic}, "amh_Ethi"},
	{[]*unicode.RangeTable{unicode.Hangul}, "kor_Hang"},
	{[]*unicode.RangeTable{unicode.Hiragana, unicode.Katakana}, "jpn_Jpan"},
	{[]*unicode.RangeTable{unicode.Han}, "zho_Hans"},
}

// tagByScript classifies a token by the first non-Latin script range
// any of its runes falls into. Returns Unknown when the token carries
// no script evidence (i.e. it is Latin or neutral).
func tagByScript(token string) language.Tag {
	for _, r := range token {
		for _, st := range scriptTags {
			if unicode.In(r, st.ranges...) {
				return st.tag
			}
		}
	}
	return language.Unknown
}

// isLatin reports whether the token consists of Latin letters only.
func isLatin(token string) bool {
	for _, r := range token {
		if !unicode.In(r, unicode.Latin) {
			return false
		}
	}
	return token != ""
}
