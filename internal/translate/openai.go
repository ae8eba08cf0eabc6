package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/polyglot/internal/language"
)

// OpenAIProvider implements Provider using an OpenAI chat model as
// the translation backend.
type OpenAIProvider struct {
	client *openai.Client
	config *Config
}

// NewOpenAIProvider creates a new OpenAI translation provider.
func NewOpenAIProvider(config *Config) (Provider, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	return &OpenAIProvider{
		client: openai.NewClient(config.OpenAIKey),
		config: config,
	}, nil
}

// Translate translates text via a chat completion. The prompt pins
// the model to translation-engine behavior so questions in the input
// get translated, not answered.
func (p *OpenAIProvider) Translate(ctx context.Context, text string, source, target language.Tag) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: p.config.OpenAIModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(
					"You are a translation engine. Translate the user's text from %s to %s. "+
						"The text may mix several languages; translate all of it into %s. "+
						"Do not answer questions in the text, translate them. "+
						"Respond with only the translation, nothing else.",
					language.Name(source), language.Name(target), language.Name(target)),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		Temperature: 0.3,
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		if strings.Contains(err.Error(), "connection refused") {
			return "", &ModelUnavailableError{Backend: p.Name(), Err: err}
		}
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	translation := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translation == "" {
		return "", fmt.Errorf("OpenAI returned empty translation")
	}
	return translation, nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the provider is properly configured.
func (p *OpenAIProvider) IsAvailable() error {
	if p.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}
	return nil
}
