// Package entity defines the domain models for the quotes feature.
package entity

// Provider names as they appear in Quote.Source and in stock identifiers.
const (
	SourceFinnhub = "finnhub"
	SourceYahoo   = "yahoo"
)

// Quote is a normalized point-in-time quote for a single symbol,
// independent of which upstream provider produced it.
type Quote struct {
	Symbol           string  // Ticker symbol as sent to the provider (e.g. "AAPL", "LLOY.L")
	Current          float64 // Last traded / current price
	High             float64 // Day high
	Low              float64 // Day low
	Open             float64 // Day open
	PreviousClose    float64 // Previous session close
	Change           float64 // Absolute change vs previous close
	ChangePercent    float64 // Percent change vs previous close
	FiftyTwoWeekHigh float64 // 52-week high, zero when the provider omits it
	FiftyTwoWeekLow  float64 // 52-week low, zero when the provider omits it
	Volume           int64   // Day volume, zero when the provider omits it
	MarketCap        int64   // Market capitalization, zero when the provider omits it
	Currency         string  // ISO currency code when known (e.g. "USD", "GBp")
	Source           string  // Provider that produced the quote ("finnhub", "yahoo")
}
