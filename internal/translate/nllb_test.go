package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func nllbTestConfig(url string) *Config {
	cfg := DefaultProviderConfig()
	cfg.NLLBBaseURL = url
	return cfg
}

func TestNLLBProvider_Translate(t *testing.T) {
	var gotReq nllbRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/translate" {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(nllbResponse{Translation: "مرحبا بالعالم"})
	}))
	defer server.Close()

	provider, err := NewNLLBProvider(nllbTestConfig(server.URL))
	if err != nil {
		t.Fatalf("NewNLLBProvider failed: %v", err)
	}

	out, err := provider.Translate(context.Background(), "hello world", "eng_Latn", "arb_Arab")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if out != "مرحبا بالعالم" {
		t.Errorf("Unexpected translation: %q", out)
	}

	if gotReq.Source != "eng_Latn" || gotReq.Target != "arb_Arab" {
		t.Errorf("Wrong codes on the wire: source=%s target=%s", gotReq.Source, gotReq.Target)
	}
	if gotReq.NumBeams != 12 {
		t.Errorf("Decoding parameters not sent: num_beams=%d", gotReq.NumBeams)
	}
}

func TestNLLBProvider_EmptyTranslation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(nllbResponse{Translation: ""})
	}))
	defer server.Close()

	provider, _ := NewNLLBProvider(nllbTestConfig(server.URL))
	if _, err := provider.Translate(context.Background(), "hello", "eng_Latn", "arb_Arab"); err == nil {
		t.Error("Expected error for empty server translation")
	}
}

func TestNLLBProvider_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	provider, _ := NewNLLBProvider(nllbTestConfig(server.URL))
	_, err := provider.Translate(context.Background(), "hello", "eng_Latn", "arb_Arab")
	if err == nil {
		t.Fatal("Expected error for 500 response")
	}
	if !IsModelUnavailable(err) {
		t.Errorf("5xx should map to ModelUnavailableError, got %T: %v", err, err)
	}
}

func TestNLLBProvider_BreakerOpensOnDeadServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	provider, _ := NewNLLBProvider(nllbTestConfig(server.URL))

	// Three consecutive failures trip the breaker; the fourth call
	// must fail fast without touching the server.
	for i := 0; i < 3; i++ {
		if _, err := provider.Translate(context.Background(), "hi", "eng_Latn", "arb_Arab"); err == nil {
			t.Fatal("Expected failure")
		}
	}

	_, err := provider.Translate(context.Background(), "hi", "eng_Latn", "arb_Arab")
	if !IsModelUnavailable(err) {
		t.Errorf("Open breaker should report ModelUnavailableError, got %T: %v", err, err)
	}
}

func TestNLLBProvider_Release(t *testing.T) {
	released := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/cache/clear" && r.Method == http.MethodPost {
			released = true
			w.WriteHeader(http.StatusOK)
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	provider, _ := NewNLLBProvider(nllbTestConfig(server.URL))
	releaser, ok := provider.(Releaser)
	if !ok {
		t.Fatal("NLLB provider should implement Releaser")
	}
	if err := releaser.Release(context.Background()); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if !released {
		t.Error("Release did not reach the server")
	}
}

func TestNLLBProvider_RequiresURL(t *testing.T) {
	cfg := DefaultProviderConfig()
	cfg.NLLBBaseURL = ""
	if _, err := NewNLLBProvider(cfg); err == nil {
		t.Error("Expected error for missing server URL")
	}
}

func TestNLLBProvider_ClientErrorsDoNotOpenBreaker(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer server.Close()

	provider, _ := NewNLLBProvider(nllbTestConfig(server.URL))

	// Repeated 4xx responses say nothing about server health: every
	// request must still reach the server, and none may be reported
	// as a backend outage.
	for i := 0; i < 5; i++ {
		_, err := provider.Translate(context.Background(), "hi", "eng_Latn", "arb_Arab")
		if err == nil {
			t.Fatal("Expected error for 400 response")
		}
		if IsModelUnavailable(err) {
			t.Fatalf("Call %d: 4xx must not be reported as backend outage: %v", i+1, err)
		}
	}

	if hits != 5 {
		t.Errorf("Breaker swallowed client-error requests: server saw %d of 5", hits)
	}
}
