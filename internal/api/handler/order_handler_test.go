package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopcart/cart-backend/internal/api"
	"github.com/shopcart/cart-backend/internal/api/handler"
	"github.com/shopcart/cart-backend/internal/core/domain"
	"github.com/shopcart/cart-backend/internal/core/ports"
)

type stubOrderService struct {
	saveFn func(ctx context.Context, input ports.SaveOrderInput) (*domain.Order, error)
}

func (s *stubOrderService) SaveOrder(ctx context.Context, input ports.SaveOrderInput) (*domain.Order, error) {
	return s.saveFn(ctx, input)
}

func newOrderServer(stub *stubOrderService) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	h := handler.NewOrderHandler(stub)
	e.POST("/save-order", h.Save)
	return e
}

func TestOrderHandler_Save_Success(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	stub := &stubOrderService{
		saveFn: func(ctx context.Context, input ports.SaveOrderInput) (*domain.Order, error) {
			if input.Src != "s.png" || input.Title != "Shirt" || input.Price != 20 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Order{ID: "order_1", Src: input.Src, Title: input.Title, Price: input.Price, CreatedAt: now}, nil
		},
	}
	rec := doJSON(newOrderServer(stub), http.MethodPost, "/save-order", `{"src":"s.png","title":"Shirt","price":20}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp struct {
		Message string        `json:"message"`
		Data    *domain.Order `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "Order saved" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.Data == nil || resp.Data.ID != "order_1" || resp.Data.Title != "Shirt" {
		t.Fatalf("unexpected data: %+v", resp.Data)
	}
}

func TestOrderHandler_Save_Validation(t *testing.T) {
	stub := &stubOrderService{
		saveFn: func(ctx context.Context, input ports.SaveOrderInput) (*domain.Order, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	e := newOrderServer(stub)

	if rec := doJSON(e, http.MethodPost, "/save-order", `not-json`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}
	if rec := doJSON(e, http.MethodPost, "/save-order", `{"src":"s.png","price":20}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing title, got %d", rec.Code)
	}
}

func TestOrderHandler_Save_StoreFault(t *testing.T) {
	stub := &stubOrderService{
		saveFn: func(ctx context.Context, input ports.SaveOrderInput) (*domain.Order, error) {
			return nil, fmt.Errorf("store unavailable")
		},
	}
	rec := doJSON(newOrderServer(stub), http.MethodPost, "/save-order", `{"src":"s.png","title":"Shirt","price":20}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
