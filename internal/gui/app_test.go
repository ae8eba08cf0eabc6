package gui

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/polyglot/internal/detect"
	"codeberg.org/snonux/polyglot/internal/language"
)

func TestSourceOption(t *testing.T) {
	a := &Application{}

	tests := []struct {
		name string
		want string
	}{
		{"auto", autoOption},
		{"Auto", autoOption},
		{"Arabic", "Arabic"},
		{"NotALanguage", autoOption},
		{"", autoOption},
	}

	for _, tt := range tests {
		if got := a.sourceOption(tt.name); got != tt.want {
			t.Errorf("sourceOption(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestTargetOption(t *testing.T) {
	a := &Application{}

	if got := a.targetOption("German"); got != "German" {
		t.Errorf("targetOption(German) = %q", got)
	}
	if got := a.targetOption("NotALanguage"); got != "English" {
		t.Errorf("targetOption fallback = %q, want English", got)
	}
}

func TestFormatAnalysis(t *testing.T) {
	analysis := detect.Analysis{
		Words: []detect.WordLang{
			{Word: "Hello", Tag: language.English},
			{Word: ",", Punct: true},
			{Word: "مرحبا", Tag: "arb_Arab"},
		},
		Languages: []language.Tag{language.English, "arb_Arab"},
	}

	out := formatAnalysis(analysis)

	if !strings.Contains(out, "English, Arabic") {
		t.Errorf("summary line missing: %q", out)
	}
	if !strings.Contains(out, "Hello") || !strings.Contains(out, "مرحبا") {
		t.Errorf("word rows missing: %q", out)
	}
	if strings.Contains(out, ",                    ") {
		t.Error("punctuation tokens should not appear as word rows")
	}
	if strings.Contains(out, "confidence") {
		t.Error("confidence note should only appear for low-confidence input")
	}
}

func TestFormatAnalysisEmpty(t *testing.T) {
	out := formatAnalysis(detect.Analysis{})
	if !strings.Contains(out, "No language-bearing words") {
		t.Errorf("unexpected empty-analysis text: %q", out)
	}
}

func TestFormatAnalysisLowConfidence(t *testing.T) {
	analysis := detect.Analysis{
		Words:         []detect.WordLang{{Word: "hi", Tag: language.English}},
		Languages:     []language.Tag{language.English},
		LowConfidence: true,
	}

	if !strings.Contains(formatAnalysis(analysis), "confidence is low") {
		t.Error("low-confidence note missing")
	}
}

func newSelectorFixture() *Application {
	a := &Application{
		sourceSelect: widget.NewSelect(append([]string{autoOption}, language.AllNames()...), nil),
		targetSelect: widget.NewSelect(language.AllNames(), nil),
	}
	return a
}

func TestSwapLanguages(t *testing.T) {
	test.NewApp()
	a := newSelectorFixture()
	a.sourceSelect.SetSelected("French")
	a.targetSelect.SetSelected("German")

	a.onSwapLanguages()

	if a.sourceSelect.Selected != "German" || a.targetSelect.Selected != "French" {
		t.Errorf("Swap got %s -> %s, want German -> French",
			a.sourceSelect.Selected, a.targetSelect.Selected)
	}
}

func TestSwapLanguagesWithAutoSource(t *testing.T) {
	test.NewApp()
	a := newSelectorFixture()
	a.sourceSelect.SetSelected(autoOption)
	a.targetSelect.SetSelected("Arabic")
	a.lastDetected = language.English

	a.onSwapLanguages()

	if a.sourceSelect.Selected != "Arabic" {
		t.Errorf("Source after swap = %s, want Arabic", a.sourceSelect.Selected)
	}
	if a.targetSelect.Selected != "English" {
		t.Errorf("Target after swap = %s, want the last detected source", a.targetSelect.Selected)
	}
}

func TestSwapLanguagesWithAutoSourceNoDetection(t *testing.T) {
	test.NewApp()
	a := newSelectorFixture()
	a.sourceSelect.SetSelected(autoOption)
	a.targetSelect.SetSelected("Arabic")

	a.onSwapLanguages()

	// Nothing detected yet: the target stays put rather than being
	// guessed.
	if a.sourceSelect.Selected != "Arabic" || a.targetSelect.Selected != "Arabic" {
		t.Errorf("Swap without detection got %s -> %s",
			a.sourceSelect.Selected, a.targetSelect.Selected)
	}
}
