package router

import (
	"github.com/labstack/echo/v4"

	"tradbazar/internal/adapter/api/handler"
	"tradbazar/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	e.GET("/v1/reviews/product/:id", reviewHandler.ListProductReviews)

	reviews := e.Group("/v1/reviews")
	reviews.Use(authMiddleware.Authenticate)
	reviews.POST("", reviewHandler.CreateReview)

	seller := e.Group("/v1/reviews/seller")
	seller.Use(authMiddleware.Authenticate)
	seller.Use(roleMiddleware.SellerOnly)
	seller.GET("", reviewHandler.ListSellerReviews)
}
