package cli

import (
	"reflect"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Target", flags.Target, "English"},
		{"Source", flags.Source, "auto"},
		{"Backend", flags.Backend, "nllb"},
		{"NLLBURL", flags.NLLBURL, "http://localhost:8000"},
		{"NLLBModel", flags.NLLBModel, "facebook/nllb-200-distilled-600M"},
		{"Beams", flags.Beams, 12},
		{"OpenAIModel", flags.OpenAIModel, "gpt-4o-mini"},
		{"GeminiModel", flags.GeminiModel, "gemini-2.0-flash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"Analyze", flags.Analyze},
		{"ListModels", flags.ListModels},
		{"GUIMode", flags.GUIMode},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != false {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"BatchFile", flags.BatchFile},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}
}

func TestFlagsStructure(t *testing.T) {
	// Test that Flags struct has all expected fields
	flags := &Flags{}
	flagsType := reflect.TypeOf(*flags)

	expectedFields := []string{
		"CfgFile", "Target", "Source", "BatchFile", "Analyze",
		"ListModels", "GUIMode", "Backend",
		"NLLBURL", "NLLBModel", "Beams",
		"OpenAIModel", "GeminiModel",
	}

	for _, fieldName := range expectedFields {
		t.Run("has_field_"+fieldName, func(t *testing.T) {
			if _, ok := flagsType.FieldByName(fieldName); !ok {
				t.Errorf("Flags struct missing field: %s", fieldName)
			}
		})
	}
}
