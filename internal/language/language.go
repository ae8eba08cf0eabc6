package language

import (
	"fmt"
	"sort"
)

// Tag identifies a natural language. The canonical form is the
// NLLB-200 code the model expects, e.g. "eng_Latn" or "arb_Arab".
type Tag string

const (
	// Auto asks the translator to detect the source language.
	Auto Tag = "auto"

	// Unknown is returned by the detector for empty or undetectable
	// input. It is not a member of the supported-language table.
	Unknown Tag = "und"
)

// English is the detector fallback for Latin-script text it cannot
// classify and the default candidate source for mixed input.
const English Tag = "eng_Latn"

// names maps human-readable language names to NLLB-200 codes.
var names = map[string]Tag{
	"Arabic":                "arb_Arab",
	"English":               "eng_Latn",
	"Spanish":               "spa_Latn",
	"French":                "fra_Latn",
	"German":                "deu_Latn",
	"Italian":               "ita_Latn",
	"Portuguese":            "por_Latn",
	"Russian":               "rus_Cyrl",
	"Chinese (Simplified)":  "zho_Hans",
	"Chinese (Traditional)": "zho_Hant",
	"Japanese":              "jpn_Jpan",
	"Korean":                "kor_Hang",
	"Hindi":                 "hin_Deva",
	"Bengali":               "ben_Beng",
	"Urdu":                  "urd_Arab",
	"Vietnamese":            "vie_Latn",
	"Thai":                  "tha_Thai",
	"Indonesian":            "ind_Latn",
	"Malay":                 "zsm_Latn",
	"Tamil":                 "tam_Taml",
	"Telugu":                "tel_Telu",
	"Turkish":               "tur_Latn",
	"Dutch":                 "nld_Latn",
	"Polish":                "pol_Latn",
	"Swedish":               "swe_Latn",
	"Greek":                 "ell_Grek",
	"Czech":                 "ces_Latn",
	"Romanian":              "ron_Latn",
	"Hungarian":             "hun_Latn",
	"Ukrainian":             "ukr_Cyrl",
	"Danish":                "dan_Latn",
	"Finnish":               "fin_Latn",
	"Norwegian":             "nob_Latn",
	"Persian":               "pes_Arab",
	"Hebrew":                "heb_Hebr",
	"Swahili":               "swh_Latn",
	"Amharic":               "amh_Ethi",
	"Hausa":                 "hau_Latn",
	"Yoruba":                "yor_Latn",
	"Somali":                "som_Latn",
	"Catalan":               "cat_Latn",
	"Slovak":                "slk_Latn",
	"Bulgarian":             "bul_Cyrl",
	"Croatian":              "hrv_Latn",
	"Serbian":               "srp_Cyrl",
	"Lithuanian":            "lit_Latn",
	"Latvian":               "lvs_Latn",
	"Estonian":              "est_Latn",
	"Slovenian":             "slv_Latn",
}

// tags is the reverse mapping, built once at init.
var tags = make(map[Tag]string, len(names))

func init() {
	for name, tag := range names {
		tags[tag] = name
	}
}

// FromName resolves a human-readable name ("English") to its Tag.
func FromName(name string) (Tag, error) {
	if tag, ok := names[name]; ok {
		return tag, nil
	}
	return "", fmt.Errorf("unsupported language name: %q", name)
}

// Name returns the human-readable name for a tag, or the tag itself
// when it is not in the table (useful for display of raw codes).
func Name(tag Tag) string {
	if name, ok := tags[tag]; ok {
		return name
	}
	return string(tag)
}

// Supported reports whether tag is in the supported-language table.
// Auto and Unknown are sentinels, not supported tags.
func Supported(tag Tag) bool {
	_, ok := tags[tag]
	return ok
}

// AllNames returns every supported language name, sorted. These
// populate the GUI selectors.
func AllNames() []string {
	all := make([]string, 0, len(names))
	for name := range names {
		all = append(all, name)
	}
	sort.Strings(all)
	return all
}

// AllTags returns every supported tag in no particular order.
func AllTags() []Tag {
	all := make([]Tag, 0, len(tags))
	for tag := range tags {
		all = append(all, tag)
	}
	return all
}
