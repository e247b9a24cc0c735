// Package finnhub provides the domestic quote provider backed by the
// Finnhub stock market API.
package finnhub

import (
	"os"
	"time"
)

// DefaultBaseURL is the production Finnhub REST endpoint.
const DefaultBaseURL = "https://finnhub.io/api/v1"

// Config holds configuration for the Finnhub API client.
type Config struct {
	APIKey  string        // API key sent as the X-Finnhub-Token header
	BaseURL string        // Base URL for the API
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Finnhub configuration from environment variables.
// FINNHUB_BASE_URL falls back to the production endpoint when unset.
func LoadConfig() Config {
	baseURL := os.Getenv("FINNHUB_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return Config{
		APIKey:  os.Getenv("FINNHUB_API_KEY"),
		BaseURL: baseURL,
		Timeout: 10 * time.Second,
	}
}
