package converter

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnavailable reports that a provider is not configured for use, as
// opposed to failing on a particular input. Both cases fall back to
// dictionary lookup, but debug traces name which one hit.
var ErrUnavailable = errors.New("converter not available")

// Provider defines the interface for primary text-to-IPA converters.
type Provider interface {
	// Convert returns the IPA transcription for text.
	Convert(ctx context.Context, text string) (string, error)

	// Name returns the provider name.
	Name() string

	// IsAvailable checks if the provider is properly configured and available.
	IsAvailable() error
}

// Config holds common configuration for primary converters.
type Config struct {
	Provider string // Provider name: "goruut", "openai", "gemini" or "none"

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string

	// Gemini-specific settings
	GeminiKey   string
	GeminiModel string
}

// DefaultProviderConfig returns default configuration.
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:    "goruut",
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.0-flash",
	}
}

// NewProvider creates the primary converter selected by config. The "none"
// provider returns nil without error: the caller runs on dictionary
// fallback only. Remote providers are wrapped in a circuit breaker.
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	switch config.Provider {
	case "goruut":
		return NewGoruutProvider(), nil

	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required: %w", ErrUnavailable)
		}
		return withBreaker(NewOpenAIProvider(config.OpenAIKey, config.OpenAIModel)), nil

	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required: %w", ErrUnavailable)
		}
		return withBreaker(NewGeminiProvider(config.GeminiKey, config.GeminiModel)), nil

	case "none", "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown converter provider: %s", config.Provider)
	}
}
