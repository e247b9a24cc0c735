package entity

import "time"

// PriceSnapshot is the stored form of the most recent quote for a
// registered stock. Exactly one snapshot exists per stock; a refresh
// overwrites it in place, so UpdatedAt never moves backwards.
type PriceSnapshot struct {
	StockID   string    `json:"stockId"`
	Quote     Quote     `json:"quote"`
	UpdatedAt time.Time `json:"updatedAt"`
}
