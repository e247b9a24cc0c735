package usecase

import "errors"

var (
	// ErrNoData is returned when a provider answered but holds no usable
	// quote or profile for the requested symbol.
	ErrNoData = errors.New("no data for symbol")

	// ErrPriceUnavailable is returned when a refresh failed and no previous
	// snapshot exists to fall back on.
	ErrPriceUnavailable = errors.New("price unavailable")

	// ErrSnapshotNotFound is returned when no snapshot is stored for a stock.
	ErrSnapshotNotFound = errors.New("price snapshot not found")

	// ErrMissingAPIKey is returned when a provider requires an API key that
	// is not configured.
	ErrMissingAPIKey = errors.New("provider api key is not configured")
)
