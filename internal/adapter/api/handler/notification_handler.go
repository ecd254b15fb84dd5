package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"tradbazar/internal/adapter/api/middleware"
	"tradbazar/internal/domain/entity"
	"tradbazar/internal/infrastructure/push"
	"tradbazar/internal/usecase"
	"tradbazar/pkg/errors"
	"tradbazar/pkg/logger"
	"tradbazar/pkg/response"
	"tradbazar/pkg/utils"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
	verifier            middleware.TokenVerifier
	hub                 *push.Hub
	upgrader            websocket.Upgrader
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase, verifier middleware.TokenVerifier, hub *push.Hub) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
		verifier:            verifier,
		hub:                 hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *NotificationHandler) GetFeed(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	feed, err := h.notificationUseCase.GetFeed(c.Request().Context(), middleware.Email(c), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, feed)
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	if err := h.notificationUseCase.MarkRead(c.Request().Context(), middleware.Email(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"read": true})
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	if err := h.notificationUseCase.MarkAllRead(c.Request().Context(), middleware.Email(c)); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"read": true})
}

// AdminFeed reads the shared admin inbox, where platform-level notifications
// (e.g. products awaiting verification) are queued for any admin.
func (h *NotificationHandler) AdminFeed(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	feed, err := h.notificationUseCase.GetFeed(c.Request().Context(), entity.AdminInbox, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, feed)
}

func (h *NotificationHandler) AdminMarkRead(c echo.Context) error {
	if err := h.notificationUseCase.MarkRead(c.Request().Context(), entity.AdminInbox, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"read": true})
}

// Attach upgrades the connection to a live notification socket. Browsers
// cannot set headers on websocket dials, so the credential rides in the
// query string.
func (h *NotificationHandler) Attach(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.Error(c, errors.Unauthorized("Token is required", nil))
	}

	email, err := h.verifier.VerifyToken(c.Request().Context(), token)
	if err != nil || email == "" {
		return response.Error(c, errors.Forbidden("Invalid or expired token", err))
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to upgrade connection", err))
	}

	client := &push.Client{
		Email: email,
		Conn:  conn,
		Send:  make(chan []byte, 16),
	}
	h.hub.Register(client)
	logger.Debug("Notification socket attached for %s", email)

	go client.WritePump()
	go client.ReadPump(h.hub)

	return nil
}
