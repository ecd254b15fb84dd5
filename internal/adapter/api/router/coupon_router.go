package router

import (
	"github.com/labstack/echo/v4"

	"tradbazar/internal/adapter/api/handler"
	"tradbazar/internal/adapter/api/middleware"
)

func SetupCouponRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	couponHandler := handler.GetCouponHandler()

	validate := e.Group("/v1/validate-coupon")
	validate.Use(authMiddleware.Authenticate)
	validate.POST("", couponHandler.ValidateCoupon)

	admin := e.Group("/v1/admin/coupons")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.POST("", couponHandler.CreateCoupon)
	admin.GET("", couponHandler.ListCoupons)
	admin.PATCH("/:code", couponHandler.UpdateCoupon)
	admin.DELETE("/:code", couponHandler.DeleteCoupon)
}
