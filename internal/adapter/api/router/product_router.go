package router

import (
	"github.com/labstack/echo/v4"

	"tradbazar/internal/adapter/api/handler"
	"tradbazar/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	productHandler := handler.GetProductHandler()

	e.GET("/v1/products", productHandler.ListProducts)
	e.GET("/v1/products/category/:name", productHandler.ListProductsByCategory)
	e.GET("/v1/product/:id", productHandler.GetProduct)

	seller := e.Group("/v1/products")
	seller.Use(authMiddleware.Authenticate)
	seller.Use(roleMiddleware.SellerOnly)
	seller.POST("", productHandler.CreateProduct)
	seller.GET("/seller", productHandler.ListMyProducts)
	seller.PUT("/:id", productHandler.UpdateProduct)
	seller.DELETE("/:id", productHandler.DeleteProduct)
	seller.PATCH("/:id/availability", productHandler.SetAvailability)

	admin := e.Group("/v1/admin/products")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.GET("", productHandler.ListAllProducts)
	admin.PATCH("/:id/verify", productHandler.VerifyProduct)
	admin.PATCH("/:id/featured", productHandler.SetFeatured)
	admin.DELETE("/:id", productHandler.DeleteProduct)
}
