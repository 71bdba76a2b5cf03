package ports

import (
	"context"

	"github.com/shopcart/cart-backend/internal/core/domain"
)

// AddItemInput carries the fields needed to add an item to the cart.
type AddItemInput struct {
	Src   string
	Title string
	Price float64
}

// CartService defines use-case operations on the cart.
type CartService interface {
	AddItem(ctx context.Context, input AddItemInput) (*domain.CartItem, error)
	ListItems(ctx context.Context) ([]*domain.CartItem, error)
	CountItems(ctx context.Context) (int64, error)
	// DeleteItem is idempotent: deleting an ID that no longer exists succeeds.
	DeleteItem(ctx context.Context, id string) error
	// ClearItems removes the given IDs in one batch and returns how many were
	// actually deleted.
	ClearItems(ctx context.Context, ids []string) (int64, error)
}
