package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"tradbazar/internal/adapter/api/middleware"
	"tradbazar/internal/usecase"
	"tradbazar/pkg/response"
)

type ReportHandler struct {
	reportUseCase *usecase.ReportUseCase
}

func NewReportHandler(reportUseCase *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
	}
}

func (h *ReportHandler) EarningsSummary(c echo.Context) error {
	summary, err := h.reportUseCase.SellerEarnings(c.Request().Context(), middleware.Email(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summary)
}

func (h *ReportHandler) TopSelling(c echo.Context) error {
	top, err := h.reportUseCase.TopSelling(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, top)
}

func (h *ReportHandler) SellerOverview(c echo.Context) error {
	year, _ := strconv.Atoi(c.QueryParam("year"))
	month, _ := strconv.Atoi(c.QueryParam("month"))

	overview, err := h.reportUseCase.Overview(c.Request().Context(), middleware.Email(c), year, month)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, overview)
}
