package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shopcart/cart-backend/internal/core/domain"
	"github.com/shopcart/cart-backend/internal/core/ports"
)

type stubOrderRepo struct {
	orders []*domain.Order
	err    error
}

func (r *stubOrderRepo) Insert(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if r.err != nil {
		return nil, r.err
	}
	clone := *order
	clone.ID = "order_1"
	r.orders = append(r.orders, &clone)
	stored := clone
	return &stored, nil
}

func TestOrderService_SaveOrder(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo, zerolog.Nop())

	order, err := svc.SaveOrder(context.Background(), ports.SaveOrderInput{Src: "s.png", Title: "Shirt", Price: 20})
	if err != nil {
		t.Fatalf("SaveOrder returned error: %v", err)
	}
	if order.ID == "" {
		t.Fatalf("expected assigned order ID")
	}
	if order.Src != "s.png" || order.Title != "Shirt" || order.Price != 20 {
		t.Fatalf("order fields not passed through: %+v", order)
	}
	if order.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt to be set")
	}
	if len(repo.orders) != 1 {
		t.Fatalf("expected one persisted order, got %d", len(repo.orders))
	}
}

func TestOrderService_StoreFaultPropagates(t *testing.T) {
	repo := &stubOrderRepo{err: errors.New("store unavailable")}
	svc := NewOrderService(repo, zerolog.Nop())

	if _, err := svc.SaveOrder(context.Background(), ports.SaveOrderInput{Title: "A"}); err == nil {
		t.Fatalf("expected store fault to propagate")
	}
}
