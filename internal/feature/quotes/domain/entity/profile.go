package entity

// StockProfile is the descriptive data a provider returns for a symbol,
// used to register a stock the first time it is tracked.
type StockProfile struct {
	Symbol   string // Ticker symbol as known to the provider
	Name     string // Company or instrument name
	Currency string // Trading currency
	Type     string // Instrument type (e.g. "EQUITY", "Common Stock")
	Exchange string // Listing exchange name
}
