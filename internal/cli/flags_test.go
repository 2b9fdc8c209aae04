package cli

import "testing"

func TestNewFlags_Defaults(t *testing.T) {
	flags := NewFlags()

	if flags.Sep != " " {
		t.Errorf("Expected default separator to be a single space, got %q", flags.Sep)
	}
	if flags.Provider != "goruut" {
		t.Errorf("Expected default provider 'goruut', got %q", flags.Provider)
	}
	if flags.Debug {
		t.Error("Expected debug to default to false")
	}
	if flags.Dict != "" {
		t.Errorf("Expected empty default dictionary path, got %q", flags.Dict)
	}
	if flags.OpenAIModel == "" {
		t.Error("Expected a default OpenAI model")
	}
	if flags.GeminiModel == "" {
		t.Error("Expected a default Gemini model")
	}
}
