package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopcart/cart-backend/internal/core/ports"
)

// OrderHandler handles HTTP requests for order persistence.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Save persists a finalized order snapshot verbatim.
//
// @Summary      Save an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      saveOrderRequest  true  "Order snapshot"
// @Success      201   {object}  saveOrderResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /save-order [post]
func (h *OrderHandler) Save(c echo.Context) error {
	var req saveOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.SaveOrder(c.Request().Context(), ports.SaveOrderInput{
		Src:   req.Src,
		Title: req.Title,
		Price: req.Price,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, saveOrderResponse{
		Message: "Order saved",
		Data:    order,
	})
}
