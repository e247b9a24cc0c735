package usecase

import "errors"

var (
	// ErrStockNotFound is returned when a stock cannot be found by ID or
	// provider symbol.
	ErrStockNotFound = errors.New("stock not found")

	// ErrStockExists is returned when a stock for the same provider symbol
	// is already registered.
	ErrStockExists = errors.New("stock already exists")

	// ErrUnknownProvider is returned when a provider name has no identifier
	// mapping.
	ErrUnknownProvider = errors.New("unknown provider")
)
