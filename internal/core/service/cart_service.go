package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shopcart/cart-backend/internal/api/metrics"
	"github.com/shopcart/cart-backend/internal/core/domain"
	"github.com/shopcart/cart-backend/internal/core/ports"
)

// CartService implements cart use-cases on top of the cart repository. It is
// a thin pass-through: the only business rules live in the request schemas.
type CartService struct {
	repo   ports.CartRepository
	logger zerolog.Logger
}

func NewCartService(repo ports.CartRepository, logger zerolog.Logger) *CartService {
	return &CartService{repo: repo, logger: logger}
}

// AddItem persists the item as given and returns the stored record including
// its assigned ID.
func (s *CartService) AddItem(ctx context.Context, input ports.AddItemInput) (*domain.CartItem, error) {
	item := &domain.CartItem{
		Src:   input.Src,
		Title: input.Title,
		Price: input.Price,
	}

	stored, err := s.repo.Insert(ctx, item)
	if err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to add cart item")
		return nil, err
	}

	metrics.CartItemsAddedTotal.Inc()
	s.logger.Info().Str("item_id", stored.ID).Str("title", stored.Title).Msg("cart item added")
	return stored, nil
}

// ListItems returns every cart item, unfiltered and unpaginated.
func (s *CartService) ListItems(ctx context.Context) ([]*domain.CartItem, error) {
	return s.repo.FindAll(ctx)
}

func (s *CartService) CountItems(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// DeleteItem removes one item by ID. A missing ID is a successful no-op.
func (s *CartService) DeleteItem(ctx context.Context, id string) error {
	n, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}

	metrics.CartItemsDeletedTotal.Add(float64(n))
	s.logger.Info().Str("item_id", id).Int64("deleted", n).Msg("cart item delete")
	return nil
}

// ClearItems deletes the given IDs in a single batch. The returned count may
// be lower than len(ids) when some IDs no longer exist; the batch is
// best-effort, atomicity is at the store's discretion.
func (s *CartService) ClearItems(ctx context.Context, ids []string) (int64, error) {
	n, err := s.repo.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}

	metrics.CartItemsDeletedTotal.Add(float64(n))
	s.logger.Info().Int("requested", len(ids)).Int64("deleted", n).Msg("cart cleared")
	return n, nil
}
