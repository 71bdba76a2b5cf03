package domain

import "time"

// Order is a finalized snapshot of a purchased item. Orders keep no link back
// to the cart records they originated from and are never mutated or deleted.
type Order struct {
	ID        string    `json:"id"`
	Src       string    `json:"src"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}
