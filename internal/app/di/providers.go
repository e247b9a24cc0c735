// Package di provides dependency injection factories for creating application components.
package di

import (
	"quote_backend/internal/feature/quotes/adapters/finnhub"
	"quote_backend/internal/feature/search/adapters/yahoosearch"
	infrahttp "quote_backend/internal/platform/http"
)

// NewFinnhubProvider creates a fully configured FinnhubProvider with HTTP client.
func NewFinnhubProvider() *finnhub.FinnhubProvider {
	cfg := finnhub.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return finnhub.NewFinnhubProvider(cfg, httpClient)
}

// NewYahooSearch creates a fully configured Yahoo Finance search client with HTTP client.
func NewYahooSearch() *yahoosearch.YahooSearch {
	cfg := yahoosearch.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return yahoosearch.NewYahooSearch(cfg, httpClient)
}
