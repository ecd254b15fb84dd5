package usecase

import (
	"context"
	"time"

	"tradbazar/internal/domain/entity"
	"tradbazar/internal/domain/repository"
	"tradbazar/pkg/errors"
)

type CouponUseCase struct {
	couponRepo repository.CouponRepository
}

func NewCouponUseCase(couponRepo repository.CouponRepository) *CouponUseCase {
	return &CouponUseCase{
		couponRepo: couponRepo,
	}
}

type CouponInput struct {
	Code      string
	Discount  float64
	Type      string
	MinAmount float64
}

func (uc *CouponUseCase) CreateCoupon(ctx context.Context, createdBy string, input CouponInput) (*entity.Coupon, error) {
	code := entity.NormalizeCouponCode(input.Code)
	if code == "" {
		return nil, errors.BadRequest("Coupon code is required", nil)
	}
	if input.Type != entity.CouponPercent && input.Type != entity.CouponFlat {
		return nil, errors.BadRequest("Coupon type must be percent or flat", nil)
	}
	if input.Discount <= 0 {
		return nil, errors.BadRequest("Discount must be greater than zero", nil)
	}

	coupon := &entity.Coupon{
		Code:      code,
		Discount:  input.Discount,
		Type:      input.Type,
		MinAmount: input.MinAmount,
		Expired:   false,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}

	if err := uc.couponRepo.Create(ctx, coupon); err != nil {
		return nil, err
	}

	return coupon, nil
}

func (uc *CouponUseCase) ListCoupons(ctx context.Context) ([]*entity.Coupon, error) {
	return uc.couponRepo.List(ctx)
}

type UpdateCouponInput struct {
	Discount  *float64
	MinAmount *float64
	Expired   *bool
}

func (uc *CouponUseCase) UpdateCoupon(ctx context.Context, code string, input UpdateCouponInput) (*entity.Coupon, error) {
	coupon, err := uc.couponRepo.GetByCode(ctx, entity.NormalizeCouponCode(code))
	if err != nil {
		return nil, err
	}

	if input.Discount != nil {
		if *input.Discount <= 0 {
			return nil, errors.BadRequest("Discount must be greater than zero", nil)
		}
		coupon.Discount = *input.Discount
	}
	if input.MinAmount != nil {
		coupon.MinAmount = *input.MinAmount
	}
	if input.Expired != nil {
		coupon.Expired = *input.Expired
	}

	if err := uc.couponRepo.Update(ctx, coupon); err != nil {
		return nil, err
	}

	return coupon, nil
}

func (uc *CouponUseCase) DeleteCoupon(ctx context.Context, code string) error {
	normalized := entity.NormalizeCouponCode(code)
	if _, err := uc.couponRepo.GetByCode(ctx, normalized); err != nil {
		return err
	}
	return uc.couponRepo.Delete(ctx, normalized)
}

// CouponValidation is the outcome of applying a coupon to an order total.
// Inapplicable coupons answer success=false with a reason instead of failing
// the request.
type CouponValidation struct {
	Success        bool    `json:"success"`
	Message        string  `json:"message,omitempty"`
	DiscountAmount float64 `json:"discount_amount,omitempty"`
}

func (uc *CouponUseCase) ValidateCoupon(ctx context.Context, code string, totalAmount float64) (*CouponValidation, error) {
	coupon, err := uc.couponRepo.GetByCode(ctx, entity.NormalizeCouponCode(code))
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return &CouponValidation{Success: false, Message: "Invalid coupon code"}, nil
		}
		return nil, err
	}

	if coupon.Expired {
		return &CouponValidation{Success: false, Message: "This coupon has expired"}, nil
	}
	if totalAmount < coupon.MinAmount {
		return &CouponValidation{Success: false, Message: "Order total does not meet the coupon minimum"}, nil
	}

	return &CouponValidation{
		Success:        true,
		DiscountAmount: coupon.DiscountFor(totalAmount),
	}, nil
}
