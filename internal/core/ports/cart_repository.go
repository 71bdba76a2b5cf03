package ports

import (
	"context"

	"github.com/shopcart/cart-backend/internal/core/domain"
)

// CartRepository defines persistence operations for cart items.
type CartRepository interface {
	// Insert persists the item and returns it with its store-assigned ID.
	Insert(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	// FindAll returns every cart item in the store's natural order.
	FindAll(ctx context.Context) ([]*domain.CartItem, error)
	Count(ctx context.Context) (int64, error)
	// DeleteByID removes the item with the given ID and reports how many
	// documents were removed (0 or 1). A well-formed ID that matches nothing
	// is not an error.
	DeleteByID(ctx context.Context, id string) (int64, error)
	// DeleteByIDs removes every item whose ID occurs in ids in one batch and
	// returns the number actually removed. Malformed IDs are skipped.
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
}
