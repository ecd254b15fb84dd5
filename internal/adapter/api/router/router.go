package router

import (
	"github.com/labstack/echo/v4"

	"tradbazar/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	SetupHealthRouter(e)
	SetupUserRouter(e, authMiddleware, roleMiddleware)
	SetupCategoryRouter(e, authMiddleware, roleMiddleware)
	SetupProductRouter(e, authMiddleware, roleMiddleware)
	SetupOrderRouter(e, authMiddleware, roleMiddleware)
	SetupReviewRouter(e, authMiddleware, roleMiddleware)
	SetupCouponRouter(e, authMiddleware, roleMiddleware)
	SetupCartRouter(e, authMiddleware)
	SetupNotificationRouter(e, authMiddleware, roleMiddleware)
	SetupReportRouter(e, authMiddleware, roleMiddleware)
	SetupPaymentRouter(e, authMiddleware)
}
