package router

import (
	"github.com/labstack/echo/v4"

	"tradbazar/internal/adapter/api/handler"
	"tradbazar/internal/adapter/api/middleware"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.POST("", orderHandler.Checkout)

	buyer := e.Group("/v1/buyer/orders")
	buyer.Use(authMiddleware.Authenticate)
	buyer.GET("", orderHandler.ListBuyerOrders)

	seller := e.Group("/v1/seller/orders")
	seller.Use(authMiddleware.Authenticate)
	seller.Use(roleMiddleware.SellerOnly)
	seller.GET("", orderHandler.ListSellerOrders)
	seller.PATCH("/:id/ship", orderHandler.ShipOrder)

	admin := e.Group("/v1/admin/orders")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.GET("", orderHandler.ListAllOrders)
	admin.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
	admin.PATCH("/:id/payment", orderHandler.MarkOrderPaid)
}
