package handler

import (
	"github.com/labstack/echo/v4"

	"tradbazar/internal/adapter/api/middleware"
	"tradbazar/internal/usecase"
	"tradbazar/pkg/response"
)

type CouponHandler struct {
	couponUseCase *usecase.CouponUseCase
}

func NewCouponHandler(couponUseCase *usecase.CouponUseCase) *CouponHandler {
	return &CouponHandler{
		couponUseCase: couponUseCase,
	}
}

type createCouponRequest struct {
	Code      string  `json:"code" validate:"required"`
	Discount  float64 `json:"discount" validate:"required,gt=0"`
	Type      string  `json:"type" validate:"required,oneof=percent flat"`
	MinAmount float64 `json:"min_amount" validate:"min=0"`
}

func (h *CouponHandler) CreateCoupon(c echo.Context) error {
	var req createCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	coupon, err := h.couponUseCase.CreateCoupon(c.Request().Context(), middleware.Email(c), usecase.CouponInput{
		Code:      req.Code,
		Discount:  req.Discount,
		Type:      req.Type,
		MinAmount: req.MinAmount,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, coupon)
}

func (h *CouponHandler) ListCoupons(c echo.Context) error {
	coupons, err := h.couponUseCase.ListCoupons(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, coupons)
}

type updateCouponRequest struct {
	Discount  *float64 `json:"discount"`
	MinAmount *float64 `json:"min_amount"`
	Expired   *bool    `json:"expired"`
}

func (h *CouponHandler) UpdateCoupon(c echo.Context) error {
	var req updateCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	coupon, err := h.couponUseCase.UpdateCoupon(c.Request().Context(), c.Param("code"), usecase.UpdateCouponInput{
		Discount:  req.Discount,
		MinAmount: req.MinAmount,
		Expired:   req.Expired,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, coupon)
}

func (h *CouponHandler) DeleteCoupon(c echo.Context) error {
	if err := h.couponUseCase.DeleteCoupon(c.Request().Context(), c.Param("code")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"deleted": true})
}

type validateCouponRequest struct {
	Code        string  `json:"code" validate:"required"`
	TotalAmount float64 `json:"total_amount" validate:"required,gt=0"`
}

func (h *CouponHandler) ValidateCoupon(c echo.Context) error {
	var req validateCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.couponUseCase.ValidateCoupon(c.Request().Context(), req.Code, req.TotalAmount)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
