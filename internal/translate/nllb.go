package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"codeberg.org/snonux/polyglot/internal/language"
)

// NLLBProvider implements Provider against a local NLLB inference
// server. The server owns the model weights, tokenizer and device
// memory; this side only speaks a small JSON protocol.
type NLLBProvider struct {
	baseURL string
	model   string
	config  *Config
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

// NewNLLBProvider creates a new NLLB inference server provider.
func NewNLLBProvider(config *Config) (Provider, error) {
	if config.NLLBBaseURL == "" {
		return nil, fmt.Errorf("NLLB server URL is required")
	}

	p := &NLLBProvider{
		baseURL: strings.TrimRight(config.NLLBBaseURL, "/"),
		model:   config.NLLBModel,
		config:  config,
		client:  &http.Client{Timeout: config.Timeout},
	}

	// A dead backend should resolve to a visible error quickly
	// instead of making every submission wait out the full HTTP
	// timeout. Three consecutive failures open the breaker. Only
	// transport errors and 5xx responses count: a malformed request
	// rejected with a 4xx says nothing about server health.
	p.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "nllb",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !IsModelUnavailable(err)
		},
	})

	return p, nil
}

type nllbRequest struct {
	Model  string `json:"model,omitempty"`
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
	DecodingConfig
}

type nllbResponse struct {
	Translation string `json:"translation"`
	Error       string `json:"error,omitempty"`
}

// Translate sends text to the inference server with fixed decoding
// parameters and returns the decoded output.
func (p *NLLBProvider) Translate(ctx context.Context, text string, source, target language.Tag) (string, error) {
	reqData := nllbRequest{
		Model:          p.model,
		Text:           text,
		Source:         string(source),
		Target:         string(target),
		DecodingConfig: p.config.DecodingFor(source, target),
	}

	payload, err := json.Marshal(reqData)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	out, err := p.breaker.Execute(func() (interface{}, error) {
		return p.post(ctx, payload)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", &ModelUnavailableError{Backend: p.Name(), Err: err}
		}
		return "", err
	}

	translation := strings.TrimSpace(out.(string))
	if translation == "" {
		return "", fmt.Errorf("NLLB server returned empty translation")
	}
	return translation, nil
}

func (p *NLLBProvider) post(ctx context.Context, payload []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/translate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &ModelUnavailableError{Backend: p.Name(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if resp.StatusCode >= http.StatusInternalServerError {
			return "", &ModelUnavailableError{
				Backend: p.Name(),
				Err:     fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
			}
		}
		return "", fmt.Errorf("NLLB server error: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var nllbResp nllbResponse
	if err := json.NewDecoder(resp.Body).Decode(&nllbResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if nllbResp.Error != "" {
		return "", fmt.Errorf("NLLB server error: %s", nllbResp.Error)
	}

	return nllbResp.Translation, nil
}

// Release asks the server to drop its loaded model and free device
// memory. Best effort: servers without the endpoint just 404.
func (p *NLLBProvider) Release(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/cache/clear", nil)
	if err != nil {
		return err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("cache clear failed: status %d", resp.StatusCode)
	}
	return nil
}

// Name returns the provider name.
func (p *NLLBProvider) Name() string {
	return "nllb"
}

// IsAvailable checks if the provider is properly configured.
func (p *NLLBProvider) IsAvailable() error {
	if p.baseURL == "" {
		return fmt.Errorf("NLLB server URL not configured")
	}
	return nil
}
