// Package dto defines data transfer objects for the Finnhub API responses.
package dto

// QuoteResponse represents the JSON response from the Finnhub /quote
// endpoint. Finnhub returns an all-zero body for symbols it does not know.
type QuoteResponse struct {
	Current       float64 `json:"c"`
	Change        float64 `json:"d"`
	ChangePercent float64 `json:"dp"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PreviousClose float64 `json:"pc"`
	Timestamp     int64   `json:"t"`
}

// ProfileResponse represents the JSON response from the Finnhub
// /stock/profile2 endpoint. Unknown symbols yield an empty object.
type ProfileResponse struct {
	Country          string  `json:"country"`
	Currency         string  `json:"currency"`
	Exchange         string  `json:"exchange"`
	IPO              string  `json:"ipo"`
	MarketCap        float64 `json:"marketCapitalization"`
	Name             string  `json:"name"`
	ShareOutstanding float64 `json:"shareOutstanding"`
	Ticker           string  `json:"ticker"`
	Industry         string  `json:"finnhubIndustry"`
	WebURL           string  `json:"weburl"`
	Logo             string  `json:"logo"`
}
