package language

import "testing"

func TestFromName(t *testing.T) {
	tag, err := FromName("English")
	if err != nil {
		t.Fatalf("FromName failed: %v", err)
	}
	if tag != "eng_Latn" {
		t.Errorf("Expected 'eng_Latn', got '%s'", tag)
	}

	if _, err := FromName("Klingon"); err == nil {
		t.Error("Expected error for unsupported language name")
	}
}

func TestNameRoundTrip(t *testing.T) {
	for _, name := range AllNames() {
		tag, err := FromName(name)
		if err != nil {
			t.Fatalf("FromName(%q) failed: %v", name, err)
		}
		if got := Name(tag); got != name {
			t.Errorf("Name(%s) = %q, want %q", tag, got, name)
		}
	}
}

func TestName_UnmappedTag(t *testing.T) {
	// Raw codes pass through for display
	if got := Name(Tag("xxx_Xxxx")); got != "xxx_Xxxx" {
		t.Errorf("Expected raw code passthrough, got %q", got)
	}
}

func TestSupported(t *testing.T) {
	if !Supported("arb_Arab") {
		t.Error("arb_Arab should be supported")
	}
	if Supported(Auto) {
		t.Error("Auto sentinel must not be a supported tag")
	}
	if Supported(Unknown) {
		t.Error("Unknown sentinel must not be a supported tag")
	}
	if Supported("eng") {
		t.Error("bare ISO codes are not valid tags")
	}
}

func TestAllNamesSorted(t *testing.T) {
	all := AllNames()
	if len(all) == 0 {
		t.Fatal("AllNames returned empty list")
	}
	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Errorf("AllNames not sorted: %q before %q", all[i-1], all[i])
		}
	}
}

func TestAllTagsMatchesNames(t *testing.T) {
	if len(AllTags()) != len(AllNames()) {
		t.Errorf("tag count %d != name count %d", len(AllTags()), len(AllNames()))
	}
}
