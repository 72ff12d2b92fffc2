package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)

	return &d
}

func TestCoupon_DiscountFor(t *testing.T) {
	tests := []struct {
		name     string
		coupon   Coupon
		subtotal string
		want     string
	}{
		{
			name: "percentage of subtotal",
			coupon: Coupon{
				DiscountType:  DiscountPercentage,
				DiscountValue: decimal.NewFromInt(10),
			},
			subtotal: "100",
			want:     "10",
		},
		{
			name: "percentage capped by max discount",
			coupon: Coupon{
				DiscountType:      DiscountPercentage,
				DiscountValue:     decimal.NewFromInt(10),
				MaxDiscountAmount: decimalPtr("5"),
			},
			subtotal: "100",
			want:     "5",
		},
		{
			name: "percentage rounds half up",
			coupon: Coupon{
				DiscountType:  DiscountPercentage,
				DiscountValue: decimal.NewFromInt(15),
			},
			subtotal: "33.33",
			want:     "5", // 4.9995 rounds to 5.00
		},
		{
			name: "fixed amount",
			coupon: Coupon{
				DiscountType:  DiscountFixed,
				DiscountValue: decimal.RequireFromString("7.50"),
			},
			subtotal: "100",
			want:     "7.5",
		},
		{
			name: "fixed amount never exceeds subtotal",
			coupon: Coupon{
				DiscountType:  DiscountFixed,
				DiscountValue: decimal.NewFromInt(20),
			},
			subtotal: "12.40",
			want:     "12.4",
		},
		{
			name: "unknown type discounts nothing",
			coupon: Coupon{
				DiscountType:  DiscountType("mystery"),
				DiscountValue: decimal.NewFromInt(10),
			},
			subtotal: "100",
			want:     "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.coupon.DiscountFor(decimal.RequireFromString(tt.subtotal))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"DiscountFor() = %s, want %s", got, tt.want)
		})
	}
}

func TestCoupon_RedeemableAt(t *testing.T) {
	now := time.Now()
	coupon := Coupon{
		IsActive: true,
		StartsAt: now.Add(-time.Hour),
		EndsAt:   now.Add(time.Hour),
	}

	assert.True(t, coupon.RedeemableAt(now))
	assert.True(t, coupon.RedeemableAt(coupon.StartsAt), "window start is inclusive")
	assert.True(t, coupon.RedeemableAt(coupon.EndsAt), "window end is inclusive")
	assert.False(t, coupon.RedeemableAt(coupon.StartsAt.Add(-time.Second)))
	assert.False(t, coupon.RedeemableAt(coupon.EndsAt.Add(time.Second)))

	coupon.IsActive = false
	assert.False(t, coupon.RedeemableAt(now), "inactive coupon is never redeemable")
}

func TestCoupon_HasUsageLeft(t *testing.T) {
	unlimited := Coupon{UsageCount: 1000}
	assert.True(t, unlimited.HasUsageLeft())

	limit := 3
	limited := Coupon{UsageLimit: &limit, UsageCount: 2}
	assert.True(t, limited.HasUsageLeft())

	limited.UsageCount = 3
	assert.False(t, limited.HasUsageLeft())
}

func TestCoupon_MeetsMinPurchase(t *testing.T) {
	coupon := Coupon{MinPurchaseAmount: decimal.NewFromInt(50)}

	assert.True(t, coupon.MeetsMinPurchase(decimal.NewFromInt(50)), "boundary is inclusive")
	assert.True(t, coupon.MeetsMinPurchase(decimal.NewFromInt(51)))
	assert.False(t, coupon.MeetsMinPurchase(decimal.RequireFromString("49.99")))
}
