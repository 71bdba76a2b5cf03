package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopcart/cart-backend/internal/api/metrics"
	"github.com/shopcart/cart-backend/internal/core/domain"
	"github.com/shopcart/cart-backend/internal/core/ports"
)

// OrderService persists finalized order snapshots. Pure write-through: no
// stock check, no price recomputation.
type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger}
}

func (s *OrderService) SaveOrder(ctx context.Context, input ports.SaveOrderInput) (*domain.Order, error) {
	order := &domain.Order{
		Src:       input.Src,
		Title:     input.Title,
		Price:     input.Price,
		CreatedAt: time.Now().UTC(),
	}

	stored, err := s.repo.Insert(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to save order")
		return nil, err
	}

	metrics.OrdersSavedTotal.Inc()
	s.logger.Info().Str("order_id", stored.ID).Str("title", stored.Title).Msg("order saved")
	return stored, nil
}
