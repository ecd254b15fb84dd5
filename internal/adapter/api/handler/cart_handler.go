package handler

import (
	"github.com/labstack/echo/v4"

	"tradbazar/internal/adapter/api/middleware"
	"tradbazar/internal/usecase"
	"tradbazar/pkg/errors"
	"tradbazar/pkg/response"
)

type CartHandler struct {
	cartUseCase *usecase.CartUseCase
}

func NewCartHandler(cartUseCase *usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

type addToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	item, err := h.cartUseCase.AddToCart(c.Request().Context(), middleware.Email(c), req.ProductID, req.Quantity)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}

func (h *CartHandler) GetCart(c echo.Context) error {
	items, err := h.cartUseCase.GetCart(c.Request().Context(), middleware.Email(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}

type adjustCartRequest struct {
	Op string `json:"op" validate:"required,oneof=increment decrement"`
}

func (h *CartHandler) AdjustQuantity(c echo.Context) error {
	var req adjustCartRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	delta := 1
	if req.Op == "decrement" {
		delta = -1
	}

	item, err := h.cartUseCase.AdjustQuantity(c.Request().Context(), middleware.Email(c), c.Param("productId"), delta)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	productID := c.Param("productId")
	if productID == "" {
		return response.Error(c, errors.BadRequest("Product id is required", nil))
	}

	if err := h.cartUseCase.RemoveFromCart(c.Request().Context(), middleware.Email(c), productID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"deleted": true})
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	if err := h.cartUseCase.ClearCart(c.Request().Context(), middleware.Email(c)); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"cleared": true})
}
