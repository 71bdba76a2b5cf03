package domain

import "errors"

var ErrInvalidItemID = errors.New("invalid item id")

// CartItem is one entry in the shopping cart. The cart is a single global
// collection: items carry no owner reference.
type CartItem struct {
	ID    string  `json:"id"`
	Src   string  `json:"src"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}
