package handler

import "github.com/shopcart/cart-backend/internal/core/domain"

// --- Request / Response types ---

type saveOrderRequest struct {
	Src   string  `json:"src"   validate:"required"`
	Title string  `json:"title" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

type saveOrderResponse struct {
	Message string        `json:"message"`
	Data    *domain.Order `json:"data"`
}
