package handler

import (
	"github.com/labstack/echo/v4"

	"tradbazar/internal/adapter/api/middleware"
	"tradbazar/internal/domain/service"
	"tradbazar/pkg/response"
)

type PaymentHandler struct {
	payments  service.PaymentIntentCreator
	callToken *service.CallTokenService
}

func NewPaymentHandler(payments service.PaymentIntentCreator, callToken *service.CallTokenService) *PaymentHandler {
	return &PaymentHandler{
		payments:  payments,
		callToken: callToken,
	}
}

type createPaymentIntentRequest struct {
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Currency string `json:"currency"`
}

func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	var req createPaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	intent, err := h.payments.CreatePaymentIntent(c.Request().Context(), req.Amount, req.Currency)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"client_secret": intent.ClientSecret})
}

func (h *PaymentHandler) CallToken(c echo.Context) error {
	token, err := h.callToken.IssueToken(c.QueryParam("seller"), middleware.Email(c), c.QueryParam("role"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, token)
}
