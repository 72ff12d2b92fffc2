package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountType selects how a coupon's value is interpreted.
type DiscountType string

const (
	// DiscountPercentage discounts value percent of the subtotal.
	DiscountPercentage DiscountType = "percentage"
	// DiscountFixed discounts a flat amount.
	DiscountFixed DiscountType = "fixed"
)

var oneHundred = decimal.NewFromInt(100)

// Coupon is a discount code with an activity window and optional usage limits.
type Coupon struct {
	ID                uuid.UUID        `json:"id"`
	Code              string           `json:"code"` // Unique, case-sensitive redemption code.
	DiscountType      DiscountType     `json:"discount_type"`
	DiscountValue     decimal.Decimal  `json:"discount_value"`
	MinPurchaseAmount decimal.Decimal  `json:"min_purchase_amount"`
	MaxDiscountAmount *decimal.Decimal `json:"max_discount_amount,omitempty"` // Cap on the computed discount; nil means uncapped.
	UsageLimit        *int             `json:"usage_limit,omitempty"`         // Total redemptions allowed; nil means unlimited.
	UsageCount        int              `json:"usage_count"`
	StartsAt          time.Time        `json:"starts_at"`
	EndsAt            time.Time        `json:"ends_at"`
	IsActive          bool             `json:"is_active"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// RedeemableAt reports whether the coupon is active and inside its date window.
func (c *Coupon) RedeemableAt(at time.Time) bool {
	return c.IsActive && !at.Before(c.StartsAt) && !at.After(c.EndsAt)
}

// HasUsageLeft reports whether the usage limit, if any, still allows a redemption.
func (c *Coupon) HasUsageLeft() bool {
	return c.UsageLimit == nil || c.UsageCount < *c.UsageLimit
}

// MeetsMinPurchase reports whether the subtotal satisfies the minimum purchase amount.
func (c *Coupon) MeetsMinPurchase(subtotal decimal.Decimal) bool {
	return subtotal.GreaterThanOrEqual(c.MinPurchaseAmount)
}

// DiscountFor computes the discount for a subtotal: percentage of the subtotal
// or the flat value, clamped to MaxDiscountAmount when set and rounded to two
// decimals (half-up). The result never exceeds the subtotal.
func (c *Coupon) DiscountFor(subtotal decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal
	switch c.DiscountType {
	case DiscountPercentage:
		discount = subtotal.Mul(c.DiscountValue).Div(oneHundred)
	case DiscountFixed:
		discount = c.DiscountValue
	default:
		return decimal.Zero
	}

	if c.MaxDiscountAmount != nil && discount.GreaterThan(*c.MaxDiscountAmount) {
		discount = *c.MaxDiscountAmount
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	return discount.Round(2)
}

// CouponUsage records one redemption of a coupon on an order. A given
// (coupon, user) pair may appear at most once.
type CouponUsage struct {
	ID             uuid.UUID       `json:"id"`
	CouponID       uuid.UUID       `json:"coupon_id"`
	OrderID        uuid.UUID       `json:"order_id"`
	UserID         uuid.UUID       `json:"user_id"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	CreatedAt      time.Time       `json:"created_at"`
}
