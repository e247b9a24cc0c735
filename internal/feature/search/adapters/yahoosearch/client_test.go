package yahoosearch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewYahooSearch(t *testing.T) {
	client := NewYahooSearch(Config{BaseURL: DefaultBaseURL, Timeout: 5 * time.Second}, &http.Client{Timeout: 5 * time.Second})
	if client == nil {
		t.Fatal("expected client instance, got nil")
	}
}

func TestYahooSearch_Search_Success(t *testing.T) {
	payload := `{
		"count": 3,
		"quotes": [
			{
				"exchange": "NMS",
				"shortname": "Apple Inc.",
				"quoteType": "EQUITY",
				"symbol": "AAPL",
				"longname": "Apple Inc.",
				"exchDisp": "NASDAQ"
			},
			{
				"exchange": "LSE",
				"shortname": "APPLE INC",
				"quoteType": "EQUITY",
				"symbol": "0R2V.L"
			},
			{
				"exchange": "SNP",
				"shortname": "S&P 500",
				"quoteType": "INDEX",
				"symbol": ""
			}
		],
		"news": []
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/finance/search" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "apple" {
			t.Errorf("expected q=apple, got %s", got)
		}
		if got := r.URL.Query().Get("newsCount"); got != "0" {
			t.Errorf("expected newsCount=0, got %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(payload)); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := NewYahooSearch(Config{BaseURL: server.URL, Timeout: 5 * time.Second}, server.Client())

	results, err := client.Search(context.Background(), "apple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// シンボルを持たない3件目は除外される
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	first := results[0]
	if first.Symbol != "AAPL" {
		t.Errorf("expected symbol AAPL, got %s", first.Symbol)
	}
	if first.Name != "Apple Inc." {
		t.Errorf("expected longname to be preferred, got %s", first.Name)
	}
	if first.Type != "EQUITY" {
		t.Errorf("expected type EQUITY, got %s", first.Type)
	}
	if first.Exchange != "NASDAQ" {
		t.Errorf("expected exchDisp to be preferred, got %s", first.Exchange)
	}

	// longname / exchDisp が無いエントリは shortname / exchange にフォールバック
	second := results[1]
	if second.Name != "APPLE INC" {
		t.Errorf("expected shortname fallback, got %s", second.Name)
	}
	if second.Exchange != "LSE" {
		t.Errorf("expected exchange fallback, got %s", second.Exchange)
	}
}

func TestYahooSearch_Search_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"count":0,"quotes":[],"news":[]}`)); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := NewYahooSearch(Config{BaseURL: server.URL, Timeout: 5 * time.Second}, server.Client())

	results, err := client.Search(context.Background(), "zzzznomatch")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected empty results, got %d", len(results))
	}
}

func TestYahooSearch_Search_HTTPError(t *testing.T) {
	statuses := []int{http.StatusTooManyRequests, http.StatusInternalServerError}
	for _, status := range statuses {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		}))

		client := NewYahooSearch(Config{BaseURL: server.URL, Timeout: 5 * time.Second}, server.Client())

		_, err := client.Search(context.Background(), "apple")
		if err == nil {
			t.Errorf("status %d: expected error, got nil", status)
		}
		server.Close()
	}
}

func TestYahooSearch_Search_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if _, err := w.Write([]byte("not json")); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := NewYahooSearch(Config{BaseURL: server.URL, Timeout: 5 * time.Second}, server.Client())

	_, err := client.Search(context.Background(), "apple")
	if err == nil {
		t.Fatal("expected decode error, got nil")
	}
}

func TestYahooSearch_Search_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		if _, err := w.Write([]byte(`{"count":0,"quotes":[]}`)); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := NewYahooSearch(Config{BaseURL: server.URL, Timeout: 5 * time.Second}, server.Client())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.Search(ctx, "apple")
	if err == nil {
		t.Fatal("expected context error, got nil")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("uses default base URL when env is empty", func(t *testing.T) {
		t.Setenv("YAHOO_SEARCH_BASE_URL", "")

		cfg := LoadConfig()
		if cfg.BaseURL != DefaultBaseURL {
			t.Errorf("expected default base URL, got %s", cfg.BaseURL)
		}
		if cfg.Timeout != 10*time.Second {
			t.Errorf("expected 10s timeout, got %s", cfg.Timeout)
		}
	})

	t.Run("overrides base URL from env", func(t *testing.T) {
		t.Setenv("YAHOO_SEARCH_BASE_URL", "http://localhost:9999")

		cfg := LoadConfig()
		if cfg.BaseURL != "http://localhost:9999" {
			t.Errorf("expected overridden base URL, got %s", cfg.BaseURL)
		}
	})
}
