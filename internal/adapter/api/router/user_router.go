package router

import (
	"github.com/labstack/echo/v4"

	"tradbazar/internal/adapter/api/handler"
	"tradbazar/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)
	users.PUT("", userHandler.UpsertUser)
	users.GET("/me", userHandler.GetMe)
	users.GET("/role", userHandler.GetMyRole)
	users.POST("/seller-request", userHandler.SubmitSellerRequest)

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.GET("/users", userHandler.ListUsers)
	admin.DELETE("/users/:email", userHandler.DeleteUser)
	admin.GET("/seller-requests", userHandler.ListSellerRequests)
	admin.PATCH("/seller-requests/:email", userHandler.ReviewSellerRequest)
}
