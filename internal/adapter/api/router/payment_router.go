package router

import (
	"github.com/labstack/echo/v4"

	"tradbazar/internal/adapter/api/handler"
	"tradbazar/internal/adapter/api/middleware"
)

func SetupPaymentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	paymentHandler := handler.GetPaymentHandler()

	payments := e.Group("/v1")
	payments.Use(authMiddleware.Authenticate)
	payments.POST("/create-payment-intent", paymentHandler.CreatePaymentIntent)
	payments.GET("/call-token", paymentHandler.CallToken)
}
