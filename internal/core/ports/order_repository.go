package ports

import (
	"context"

	"github.com/shopcart/cart-backend/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	// Insert persists the order and returns it with its store-assigned ID.
	Insert(ctx context.Context, order *domain.Order) (*domain.Order, error)
}
