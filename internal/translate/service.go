package translate

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"codeberg.org/snonux/polyglot/internal"
	"codeberg.org/snonux/polyglot/internal/detect"
	"codeberg.org/snonux/polyglot/internal/language"
)

// Releaser is implemented by providers that hold releasable backend
// state (the NLLB server's loaded model). ClearCache calls it best
// effort.
type Releaser interface {
	Release(ctx context.Context) error
}

// Result is the outcome of one translation request.
type Result struct {
	// Text is the translated output. Empty only when the input was
	// empty.
	Text string

	// Source is the source language the winning translation used.
	// With an explicit source tag it echoes that tag; with Auto it is
	// the detected/selected candidate.
	Source language.Tag

	// Analysis is the word-level language breakdown of the input.
	Analysis detect.Analysis

	// Warning is a non-fatal detection notice (e.g. low confidence).
	Warning string
}

// Service owns the model session lifecycle and is the only path to
// the translation backend. One instance serves the whole process.
type Service struct {
	config   *Config
	detector *detect.Detector

	// mu guards provider and cache so an overlapping Translate and
	// ClearCache pair never observes a half-built session.
	mu       sync.Mutex
	provider Provider
	cache    *resultCache
}

// NewService creates a translation service. The backend session is
// not created here: it comes up lazily on the first Translate call.
func NewService(config *Config, detector *detect.Detector) *Service {
	if config == nil {
		config = DefaultProviderConfig()
	}
	return &Service{
		config:   config,
		detector: detector,
		cache:    newResultCache(),
	}
}

// session returns the backend provider, creating it on first use.
func (s *Service) session() (Provider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.provider != nil {
		return s.provider, nil
	}

	fmt.Printf("Loading translation backend %q...\n", s.config.Backend)
	provider, err := NewProvider(s.config)
	if err != nil {
		return nil, &ModelUnavailableError{Backend: s.config.Backend, Err: err}
	}
	s.provider = provider
	return provider, nil
}

// ClearCache releases the backend session and the in-memory result
// cache. Idempotent: clearing with no session is a no-op. The next
// Translate call recreates a fresh session.
func (s *Service) ClearCache() {
	s.mu.Lock()
	provider := s.provider
	s.provider = nil
	s.cache = newResultCache()
	s.mu.Unlock()

	if releaser, ok := provider.(Releaser); ok {
		if err := releaser.Release(context.Background()); err != nil {
			fmt.Printf("Warning: backend cache release failed: %v\n", err)
		}
	}
}

// Translate translates text into the target language. source may be
// language.Auto, in which case the detector picks candidate source
// languages and the best-scoring output wins. The input is never
// mutated; empty input returns an empty Result without error.
func (s *Service) Translate(ctx context.Context, text string, source, target language.Tag) (*Result, error) {
	text = internal.NormalizeWhitespace(text)
	if text == "" {
		return &Result{Source: language.Unknown}, nil
	}

	if !language.Supported(target) {
		return nil, &ConfigurationError{Tag: target}
	}
	if source != language.Auto && !language.Supported(source) {
		return nil, &ConfigurationError{Tag: source}
	}

	analysis := s.detector.Analyze(text)

	candidates := s.sourceCandidates(source, analysis)
	if len(candidates) == 0 {
		// Nothing detectable: translate as English rather than fail.
		candidates = []language.Tag{language.English}
	}

	provider, err := s.session()
	if err != nil {
		return nil, err
	}

	result := &Result{Analysis: analysis}
	if analysis.LowConfidence && source == language.Auto {
		result.Warning = "language detection is a best guess for this input"
	}

	bestScore := 0.0
	var lastErr error
	for _, candidate := range candidates {
		output, err := s.translateOnce(ctx, provider, text, candidate, target)
		if err != nil {
			lastErr = err
			continue
		}

		score := scoreTranslation(text, output, target)
		if result.Text == "" || score > bestScore {
			result.Text = output
			result.Source = candidate
			bestScore = score
		}
	}

	if result.Text == "" {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, fmt.Errorf("backend returned no translation for %q", text)
	}
	return result, nil
}

// translateOnce runs one provider call for a fixed source tag,
// consulting the session result cache first.
func (s *Service) translateOnce(ctx context.Context, provider Provider, text string, source, target language.Tag) (string, error) {
	s.mu.Lock()
	cached, ok := s.cache.Get(text, source, target)
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	output, err := provider.Translate(ctx, text, source, target)
	if err != nil {
		return "", err
	}

	output = strings.TrimSpace(output)
	if output == "" {
		return "", fmt.Errorf("backend returned empty output for non-empty input")
	}

	s.mu.Lock()
	s.cache.Add(text, source, target, output)
	s.mu.Unlock()
	return output, nil
}

// sourceCandidates picks the source languages to try. An explicit
// source tag is used as-is. For Auto the strategy follows what works
// on code-switched text: the detected dominant language, always
// English (the most common embedded language), and a detected
// Romance language if present.
func (s *Service) sourceCandidates(source language.Tag, analysis detect.Analysis) []language.Tag {
	if source != language.Auto {
		return []language.Tag{source}
	}

	var candidates []language.Tag
	if dominant := analysis.Dominant(); language.Supported(dominant) {
		candidates = append(candidates, dominant)
	}
	candidates = append(candidates, language.English)
	if analysis.Contains("fra_Latn") {
		candidates = append(candidates, "fra_Latn")
	} else if analysis.Contains("spa_Latn") {
		candidates = append(candidates, "spa_Latn")
	}

	return dedupTags(candidates)
}

func dedupTags(tags []language.Tag) []language.Tag {
	seen := make(map[language.Tag]bool, len(tags))
	out := tags[:0]
	for _, t := range tags {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// resultCache stores translations in memory for the lifetime of one
// model session. It is never written to disk.
type resultCache struct {
	translations map[cacheKey]string
}

type cacheKey struct {
	text   string
	source language.Tag
	target language.Tag
}

func newResultCache() *resultCache {
	return &resultCache{translations: make(map[cacheKey]string)}
}

// Add adds a translation to the cache.
func (c *resultCache) Add(text string, source, target language.Tag, translation string) {
	c.translations[cacheKey{text, source, target}] = translation
}

// Get retrieves a translation from the cache.
func (c *resultCache) Get(text string, source, target language.Tag) (string, bool) {
	translation, ok := c.translations[cacheKey{text, source, target}]
	return translation, ok
}

// Len returns the number of cached translations.
func (c *resultCache) Len() int {
	return len(c.translations)
}
