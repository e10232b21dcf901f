package models

import "time"

// Product is a shop catalog entry; Price is in whole rupees.
type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
}

// Order is the result of checking out a cart.
type Order struct {
	ID       string    `json:"id"`
	Items    []Product `json:"items"`
	Total    int64     `json:"total"`
	PlacedAt time.Time `json:"placed_at"`
}
