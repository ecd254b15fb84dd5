package entity

import (
	"strings"
	"time"
)

const (
	CouponPercent = "percent"
	CouponFlat    = "flat"
)

// Coupon is keyed by code; the Firestore document ID is the uppercased code.
type Coupon struct {
	Code      string    `json:"code" firestore:"code"`
	Discount  float64   `json:"discount" firestore:"discount"`
	Type      string    `json:"type" firestore:"type"`
	MinAmount float64   `json:"min_amount" firestore:"minAmount"`
	Expired   bool      `json:"expired" firestore:"expired"`
	CreatedBy string    `json:"created_by" firestore:"createdBy"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// DiscountFor computes the discount for a given order total. The result is
// clamped so the discounted total can never go negative.
func (c *Coupon) DiscountFor(totalAmount float64) float64 {
	var discount float64
	switch c.Type {
	case CouponPercent:
		discount = totalAmount * c.Discount / 100
	default:
		discount = c.Discount
	}

	if discount > totalAmount {
		discount = totalAmount
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}
