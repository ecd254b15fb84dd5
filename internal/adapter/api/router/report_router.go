package router

import (
	"github.com/labstack/echo/v4"

	"tradbazar/internal/adapter/api/handler"
	"tradbazar/internal/adapter/api/middleware"
)

func SetupReportRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	reportHandler := handler.GetReportHandler()

	e.GET("/v1/top-selling", reportHandler.TopSelling)

	seller := e.Group("/v1/seller")
	seller.Use(authMiddleware.Authenticate)
	seller.Use(roleMiddleware.SellerOnly)
	seller.GET("/earnings-summary", reportHandler.EarningsSummary)
	seller.GET("/overview", reportHandler.SellerOverview)
}
