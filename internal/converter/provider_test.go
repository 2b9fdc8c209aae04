package converter

import (
	"context"
	"errors"
	"testing"
)

func TestDefaultProviderConfig(t *testing.T) {
	config := DefaultProviderConfig()

	if config.Provider != "goruut" {
		t.Errorf("Expected provider 'goruut', got '%s'", config.Provider)
	}
	if config.OpenAIModel == "" {
		t.Error("Expected a default OpenAI model")
	}
	if config.GeminiModel == "" {
		t.Error("Expected a default Gemini model")
	}
}

func TestNewProvider_None(t *testing.T) {
	p, err := NewProvider(&Config{Provider: "none"})
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}
	if p != nil {
		t.Error("Expected nil provider for 'none'")
	}
}

func TestNewProvider_OpenAIWithoutKey(t *testing.T) {
	_, err := NewProvider(&Config{Provider: "openai"})
	if err == nil {
		t.Fatal("Expected error for missing OpenAI API key")
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got: %v", err)
	}
}

func TestNewProvider_GeminiWithoutKey(t *testing.T) {
	_, err := NewProvider(&Config{Provider: "gemini"})
	if err == nil {
		t.Fatal("Expected error for missing Gemini API key")
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got: %v", err)
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider(&Config{Provider: "espeak"})
	if err == nil {
		t.Error("Expected error for unknown provider")
	}
	if errors.Is(err, ErrUnavailable) {
		t.Error("Unknown provider is a configuration error, not an availability one")
	}
}

func TestNewProvider_RemoteProvidersAreWrapped(t *testing.T) {
	p, err := NewProvider(&Config{Provider: "openai", OpenAIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}
	if _, ok := p.(*breakerProvider); !ok {
		t.Errorf("Expected openai provider to be breaker-wrapped, got %T", p)
	}
	if p.Name() != "openai" {
		t.Errorf("Expected wrapped name 'openai', got %q", p.Name())
	}
}

func TestOpenAIProvider_IsAvailable(t *testing.T) {
	p := NewOpenAIProvider("", "")
	if err := p.IsAvailable(); err == nil {
		t.Error("Expected availability error without API key")
	}

	p = NewOpenAIProvider("test-key", "")
	if err := p.IsAvailable(); err != nil {
		t.Errorf("Expected availability with API key, got: %v", err)
	}
}

func TestGeminiProvider_IsAvailable(t *testing.T) {
	p := NewGeminiProvider("", "")
	if err := p.IsAvailable(); err == nil {
		t.Error("Expected availability error without API key")
	}

	p = NewGeminiProvider("test-key", "")
	if err := p.IsAvailable(); err != nil {
		t.Errorf("Expected availability with API key, got: %v", err)
	}
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	inner := &mockProvider{name: "mock", convertErr: errors.New("api down")}
	p := withBreaker(inner)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := p.Convert(ctx, "cat"); err == nil {
			t.Fatal("Expected error from failing provider")
		}
	}

	// Breaker is now open: the inner provider must not be called again.
	calls := inner.convertCalls
	if _, err := p.Convert(ctx, "cat"); err == nil {
		t.Fatal("Expected error from open breaker")
	}
	if inner.convertCalls != calls {
		t.Errorf("Expected no further inner calls, got %d extra", inner.convertCalls-calls)
	}
}

func TestBreaker_PassesThroughSuccess(t *testing.T) {
	inner := &mockProvider{name: "mock", result: "kæt"}
	p := withBreaker(inner)

	result, err := p.Convert(context.Background(), "cat")
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if result != "kæt" {
		t.Errorf("Convert = %q, want \"kæt\"", result)
	}
}

func TestGoruutProvider_Name(t *testing.T) {
	p := NewGoruutProvider()
	if p.Name() != "goruut" {
		t.Errorf("Expected name 'goruut', got %q", p.Name())
	}
	if err := p.IsAvailable(); err != nil {
		t.Errorf("goruut should always be available, got: %v", err)
	}
}

func TestGoruutProvider_Convert(t *testing.T) {
	p := NewGoruutProvider()

	result, err := p.Convert(context.Background(), "hello world")
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if result == "" {
		t.Error("Expected a non-empty transcription")
	}
}
