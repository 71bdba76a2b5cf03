package ports

import (
	"context"

	"github.com/shopcart/cart-backend/internal/core/domain"
)

// SaveOrderInput carries a finalized order snapshot as submitted by the
// client. No price recomputation or stock check is applied; the caller is
// the trust boundary.
type SaveOrderInput struct {
	Src   string
	Title string
	Price float64
}

// OrderService persists finalized orders.
type OrderService interface {
	SaveOrder(ctx context.Context, input SaveOrderInput) (*domain.Order, error)
}
