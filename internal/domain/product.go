package domain

import "time"

// Product is a catalog row. Price is in whole currency units (dollars);
// the checkout builder converts to the smallest unit when charging.
type Product struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Price          float64   `json:"price"`
	ImageURL       string    `json:"image_url,omitempty"`
	AvailableCount int       `json:"available_count"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
}
