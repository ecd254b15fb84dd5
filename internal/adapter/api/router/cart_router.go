package router

import (
	"github.com/labstack/echo/v4"

	"tradbazar/internal/adapter/api/handler"
	"tradbazar/internal/adapter/api/middleware"
)

func SetupCartRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	cartHandler := handler.GetCartHandler()

	cart := e.Group("/v1/cart")
	cart.Use(authMiddleware.Authenticate)
	cart.POST("", cartHandler.AddToCart)
	cart.GET("", cartHandler.GetCart)
	cart.PATCH("/:productId", cartHandler.AdjustQuantity)
	cart.DELETE("/:productId", cartHandler.RemoveFromCart)
	cart.DELETE("", cartHandler.ClearCart)
}
