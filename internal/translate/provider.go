package translate

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/snonux/polyglot/internal/language"
)

// Provider is a translation model backend. Implementations treat the
// model itself as an opaque collaborator: they hand over text plus
// model-internal language codes and get translated text back.
type Provider interface {
	// Translate transforms text from the source language into the
	// target language. Both tags are already validated against the
	// supported-language table.
	Translate(ctx context.Context, text string, source, target language.Tag) (string, error)

	// Name returns the provider name.
	Name() string

	// IsAvailable checks if the provider is properly configured.
	IsAvailable() error
}

// DecodingConfig holds the generation parameters sent to the NLLB
// backend. These are fixed configuration, never per-request UI
// parameters.
type DecodingConfig struct {
	NumBeams          int     `json:"num_beams"`
	MaxNewTokens      int     `json:"max_new_tokens"`
	NoRepeatNGramSize int     `json:"no_repeat_ngram_size"`
	RepetitionPenalty float64 `json:"repetition_penalty"`
	LengthPenalty     float64 `json:"length_penalty"`
}

// Config holds common configuration for translation providers.
type Config struct {
	Backend string // "nllb", "openai" or "gemini"
	Timeout time.Duration

	// NLLB-specific settings
	NLLBBaseURL string // e.g. "http://localhost:8000"
	NLLBModel   string // e.g. "facebook/nllb-200-distilled-600M"
	Decoding    DecodingConfig

	// DecodingOverrides replaces the default decoding parameters for
	// specific language pairs, keyed "source>target". Left empty in
	// normal operation; exists so quality regressions on a single
	// pair can be tuned without touching every other pair.
	DecodingOverrides map[string]DecodingConfig

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string // e.g. "gpt-4o-mini"

	// Gemini-specific settings
	GeminiKey   string
	GeminiModel string // e.g. "gemini-2.0-flash"
}

// DefaultProviderConfig returns default configuration.
func DefaultProviderConfig() *Config {
	return &Config{
		Backend:     "nllb",
		Timeout:     120 * time.Second,
		NLLBBaseURL: "http://localhost:8000",
		NLLBModel:   "facebook/nllb-200-distilled-600M",
		Decoding: DecodingConfig{
			NumBeams:          12,
			MaxNewTokens:      450,
			NoRepeatNGramSize: 3,
			RepetitionPenalty: 1.18,
			LengthPenalty:     1.05,
		},
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.0-flash",
	}
}

// DecodingFor returns the decoding parameters for a language pair,
// honoring per-pair overrides.
func (c *Config) DecodingFor(source, target language.Tag) DecodingConfig {
	if c.DecodingOverrides != nil {
		if d, ok := c.DecodingOverrides[fmt.Sprintf("%s>%s", source, target)]; ok {
			return d
		}
	}
	return c.Decoding
}

// NewProvider creates the appropriate translation provider based on
// configuration.
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	switch config.Backend {
	case "nllb":
		return NewNLLBProvider(config)

	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIProvider(config)

	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		return NewGeminiProvider(config)

	default:
		return nil, fmt.Errorf("unknown translation backend: %s", config.Backend)
	}
}

// ProviderWithFallback wraps a primary provider with a fallback option.
type ProviderWithFallback struct {
	primary  Provider
	fallback Provider
}

// NewProviderWithFallback creates a provider that falls back to
// secondary if primary fails.
func NewProviderWithFallback(primary, fallback Provider) Provider {
	return &ProviderWithFallback{
		primary:  primary,
		fallback: fallback,
	}
}

// Translate tries the primary provider first, falls back on error.
func (p *ProviderWithFallback) Translate(ctx context.Context, text string, source, target language.Tag) (string, error) {
	out, err := p.primary.Translate(ctx, text, source, target)
	if err != nil {
		fmt.Printf("Primary provider (%s) failed: %v. Falling back to %s\n",
			p.primary.Name(), err, p.fallback.Name())
		return p.fallback.Translate(ctx, text, source, target)
	}
	return out, nil
}

// Name returns the provider name.
func (p *ProviderWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", p.primary.Name(), p.fallback.Name())
}

// IsAvailable checks if at least one provider is available.
func (p *ProviderWithFallback) IsAvailable() error {
	primaryErr := p.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := p.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both providers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}
