package converter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

// GeminiProvider asks a Gemini model for the IPA transcription.
type GeminiProvider struct {
	apiKey string
	model  string

	once    sync.Once
	client  *genai.Client
	initErr error
}

// NewGeminiProvider creates a new Gemini-backed converter.
func NewGeminiProvider(apiKey, model string) *GeminiProvider {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiProvider{
		apiKey: apiKey,
		model:  model,
	}
}

// clientFor initializes the genai client on first use. Client construction
// needs a context, so it cannot happen in the constructor.
func (p *GeminiProvider) clientFor(ctx context.Context) (*genai.Client, error) {
	p.once.Do(func() {
		p.client, p.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  p.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	return p.client, p.initErr
}

// Convert requests an IPA transcription of text from the Gemini model.
func (p *GeminiProvider) Convert(ctx context.Context, text string) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("Gemini API key not configured: %w", ErrUnavailable)
	}

	client, err := p.clientFor(ctx)
	if err != nil {
		return "", fmt.Errorf("Gemini client error: %w", err)
	}

	prompt := fmt.Sprintf("Transcribe the following English text into the International Phonetic Alphabet. Respond with only the IPA transcription, nothing else.\n\n%s", text)

	resp, err := client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	result := strings.TrimSpace(resp.Text())
	if result == "" {
		return "", fmt.Errorf("no transcription returned")
	}

	return result, nil
}

// Name returns the provider name.
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// IsAvailable checks that an API key is configured.
func (p *GeminiProvider) IsAvailable() error {
	if p.apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY not set")
	}
	return nil
}
