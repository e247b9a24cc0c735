// Package entity defines the domain models for the stocks feature.
package entity

import "time"

// Identifiers holds the per-provider external symbols and reference codes
// for a stock. Only the key of the provider that registered the stock is
// populated at creation; the others stay nil until enriched.
type Identifiers struct {
	Finnhub   *string `json:"finnhub,omitempty"`
	Yahoo     *string `json:"yahoo,omitempty"`
	ISIN      *string `json:"isin,omitempty"`
	SEDOL     *string `json:"sedol,omitempty"`
	Bloomberg *string `json:"bloomberg,omitempty"`
	FIGI      *string `json:"figi,omitempty"`
}

// CorporateAction is a passively stored corporate action record. The
// system keeps these for downstream consumers and never evaluates them.
type CorporateAction struct {
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Factor      float64   `json:"factor"`
	Description string    `json:"description,omitempty"`
}

// Stock is a registered instrument. At most one Stock exists per distinct
// (provider, external symbol) pair.
type Stock struct {
	ID               string            // UUID, assigned at creation, immutable
	Name             string            // Provider-sourced display name
	Symbol           string            // Primary ticker symbol
	Currency         string            // Trading currency
	Type             string            // Instrument type as reported upstream
	Exchange         string            // Listing exchange
	Identifiers      Identifiers       // Cross-provider identifier map
	CorporateActions []CorporateAction // Append-only, empty at creation
	AdjustmentFactor float64           // Defaults to 1.0, never recomputed here
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
