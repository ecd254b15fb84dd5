package handler

import (
	"github.com/labstack/echo/v4"

	"tradbazar/internal/adapter/api/middleware"
	"tradbazar/internal/usecase"
	"tradbazar/pkg/response"
	"tradbazar/pkg/utils"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type checkoutRequest struct {
	BuyerName     string                 `json:"buyer_name"`
	Address       string                 `json:"address" validate:"required"`
	District      string                 `json:"district" validate:"required"`
	Phone         string                 `json:"phone" validate:"required"`
	PaymentMethod string                 `json:"payment_method" validate:"required,oneof=COD Card"`
	Items         []usecase.CheckoutItem `json:"items" validate:"required,min=1"`
}

func (h *OrderHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	orders, err := h.orderUseCase.Checkout(c.Request().Context(), usecase.CheckoutInput{
		BuyerEmail:    middleware.Email(c),
		BuyerName:     req.BuyerName,
		Address:       req.Address,
		District:      req.District,
		Phone:         req.Phone,
		PaymentMethod: req.PaymentMethod,
		Items:         req.Items,
	})
	if err != nil {
		return response.Error(c, err)
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	return response.Created(c, map[string]interface{}{
		"order_ids": ids,
		"orders":    orders,
	})
}

func (h *OrderHandler) ListBuyerOrders(c echo.Context) error {
	orders, err := h.orderUseCase.ListBuyerOrders(c.Request().Context(), middleware.Email(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}

func (h *OrderHandler) ListSellerOrders(c echo.Context) error {
	orders, err := h.orderUseCase.ListSellerOrders(c.Request().Context(), middleware.Email(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}

func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListAllOrders(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, pagination.Page, pagination.PageSize)
}

type shipOrderRequest struct {
	TrackingID  string `json:"tracking_id" validate:"required"`
	CourierName string `json:"courier_name" validate:"required"`
}

func (h *OrderHandler) ShipOrder(c echo.Context) error {
	var req shipOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.ShipOrder(c.Request().Context(), c.Param("id"), middleware.Email(c), usecase.ShipOrderInput{
		TrackingID:  req.TrackingID,
		CourierName: req.CourierName,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.UpdateOrderStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) MarkOrderPaid(c echo.Context) error {
	order, err := h.orderUseCase.MarkOrderPaid(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}
