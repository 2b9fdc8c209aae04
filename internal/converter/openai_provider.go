package converter

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider asks an OpenAI chat model for the IPA transcription.
type OpenAIProvider struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAIProvider creates a new OpenAI-backed converter.
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIProvider{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
	}
}

// Convert requests an IPA transcription of text from the chat model.
func (p *OpenAIProvider) Convert(ctx context.Context, text string) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not configured: %w", ErrUnavailable)
	}

	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You transcribe English text into the International Phonetic Alphabet. Respond with only the IPA transcription, nothing else.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		MaxTokens:   200,
		Temperature: 0,
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no transcription returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks that an API key is configured.
func (p *OpenAIProvider) IsAvailable() error {
	if p.apiKey == "" {
		return fmt.Errorf("OPENAI_API_KEY not set")
	}
	return nil
}
