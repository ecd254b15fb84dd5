package router

import (
	"github.com/labstack/echo/v4"

	"tradbazar/internal/adapter/api/handler"
	"tradbazar/internal/adapter/api/middleware"
)

func SetupNotificationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	notificationHandler := handler.GetNotificationHandler()

	notifications := e.Group("/v1/notifications")
	notifications.Use(authMiddleware.Authenticate)
	notifications.GET("", notificationHandler.GetFeed)
	notifications.PATCH("/:id/read", notificationHandler.MarkRead)
	notifications.PATCH("/read-all", notificationHandler.MarkAllRead)

	admin := e.Group("/v1/admin/notifications")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.GET("", notificationHandler.AdminFeed)
	admin.PATCH("/:id/read", notificationHandler.AdminMarkRead)

	// Websocket attach authenticates via query token inside the handler.
	e.GET("/v1/ws/notifications", notificationHandler.Attach)
}
