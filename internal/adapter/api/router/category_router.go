package router

import (
	"github.com/labstack/echo/v4"

	"tradbazar/internal/adapter/api/handler"
	"tradbazar/internal/adapter/api/middleware"
)

func SetupCategoryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	categoryHandler := handler.GetCategoryHandler()

	e.GET("/v1/categories", categoryHandler.ListCategories)

	admin := e.Group("/v1/categories")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.POST("", categoryHandler.CreateCategory)
	admin.DELETE("/:id", categoryHandler.DeleteCategory)
}
