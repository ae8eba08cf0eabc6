package translate

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"codeberg.org/snonux/polyglot/internal/language"
)

// GeminiProvider implements Provider using the Gemini API as the
// translation backend.
type GeminiProvider struct {
	config *Config
	client *genai.Client
}

// NewGeminiProvider creates a new Gemini translation provider. The
// client is created on first use because genai.NewClient needs a
// context.
func NewGeminiProvider(config *Config) (Provider, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	return &GeminiProvider{config: config}, nil
}

func (p *GeminiProvider) ensureClient(ctx context.Context) error {
	if p.client != nil {
		return nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return &ModelUnavailableError{Backend: p.Name(), Err: err}
	}
	p.client = client
	return nil
}

// Translate translates text via Gemini generateContent.
func (p *GeminiProvider) Translate(ctx context.Context, text string, source, target language.Tag) (string, error) {
	if err := p.ensureClient(ctx); err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(
		"You are a translation engine. Translate the following text from %s to %s. "+
			"The text may mix several languages; translate all of it into %s. "+
			"Do not answer questions in the text, translate them. "+
			"Respond with only the translation, nothing else.\n\n%s",
		language.Name(source), language.Name(target), language.Name(target), text)

	resp, err := p.client.Models.GenerateContent(ctx, p.config.GeminiModel, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translation := strings.TrimSpace(resp.Text())
	if translation == "" {
		return "", fmt.Errorf("Gemini returned empty translation")
	}
	return translation, nil
}

// Name returns the provider name.
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// IsAvailable checks if the provider is properly configured.
func (p *GeminiProvider) IsAvailable() error {
	if p.config.GeminiKey == "" {
		return fmt.Errorf("Gemini API key not configured")
	}
	return nil
}
