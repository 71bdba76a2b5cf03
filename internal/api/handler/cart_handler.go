package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopcart/cart-backend/internal/core/domain"
	"github.com/shopcart/cart-backend/internal/core/ports"
)

// CartHandler handles HTTP requests for cart operations.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// AddItem stores a new cart item.
//
// @Summary      Add an item to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      addItemRequest  true  "Item details"
// @Success      201   {object}  domain.CartItem
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /send-data [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.AddItem(c.Request().Context(), ports.AddItemInput{
		Src:   req.Src,
		Title: req.Title,
		Price: req.Price,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, item)
}

// List returns every cart item.
//
// @Summary      List cart items
// @Tags         cart
// @Produce      json
// @Success      200   {array}   domain.CartItem
// @Failure      500   {object}  map[string]string
// @Router       /get-data [get]
func (h *CartHandler) List(c echo.Context) error {
	items, err := h.service.ListItems(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*domain.CartItem{}
	}
	return c.JSON(http.StatusOK, items)
}

// Count returns the number of cart items.
//
// @Summary      Count cart items
// @Tags         cart
// @Produce      json
// @Success      200   {object}  countResponse
// @Failure      500   {object}  map[string]string
// @Router       /count [get]
func (h *CartHandler) Count(c echo.Context) error {
	n, err := h.service.CountItems(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countResponse{Count: n})
}

// Delete removes one item by ID. Deleting an ID that no longer exists still
// succeeds.
//
// @Summary      Delete a cart item
// @Tags         cart
// @Produce      json
// @Param        id    path      string  true  "Item ID"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /delete-item/{id} [delete]
func (h *CartHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteItem(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Item deleted!"})
}

// Clear batch-deletes the given item IDs and reports how many were removed.
//
// @Summary      Clear cart items by ID set
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      clearCartRequest  true  "Item IDs"
// @Success      200   {object}  clearCartResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /clear-cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	var req clearCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	n, err := h.service.ClearItems(c.Request().Context(), req.IDs)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, clearCartResponse{
		Message:      "Cart items deleted",
		DeletedCount: n,
	})
}
