package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// taxRateCacheKey is the context key for the per-request tax rate cache.
type taxRateCacheKey struct{}

// TaxRateCache memoizes jurisdiction lookups for the duration of one request,
// so pricing the same address twice (quote, then checkout) hits the database
// once.
type TaxRateCache map[string]decimal.Decimal

// WithTaxRateCache attaches a fresh tax rate cache to the context.
func WithTaxRateCache(ctx context.Context) context.Context {
	return context.WithValue(ctx, taxRateCacheKey{}, TaxRateCache{})
}

// TaxRateCacheFrom extracts the tax rate cache, if any, from the context.
func TaxRateCacheFrom(ctx context.Context) (TaxRateCache, bool) {
	cache, ok := ctx.Value(taxRateCacheKey{}).(TaxRateCache)

	return cache, ok
}

// QuoteLine is one priced order line in a quote.
type QuoteLine struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// PriceQuote is the full price breakdown for a prospective order. Tax applies
// to the discounted subtotal only; shipping is never taxed.
type PriceQuote struct {
	Lines          []*QuoteLine    `json:"lines"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	ShippingCost   decimal.Decimal `json:"shipping_cost"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	TaxRateDisplay string          `json:"tax_rate_display"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	Total          decimal.Decimal `json:"total"`
	CouponID       *uuid.UUID      `json:"coupon_id,omitempty"`
}

// FormatRate renders a percentage rate for display, e.g. "8.25%".
func FormatRate(rate decimal.Decimal) string {
	return rate.String() + "%"
}

// CouponValidation is the outcome of checking a coupon against a subtotal
// without redeeming it.
type CouponValidation struct {
	Coupon   *entity.Coupon  `json:"coupon"`
	Discount decimal.Decimal `json:"discount"`
}

// PricingUsecase computes totals, taxes and coupon discounts. Quote is pure
// computation over repository reads; ApplyCoupon mutates redemption state and
// therefore runs inside the checkout transaction.
type PricingUsecase interface {
	// Quote prices the given lines for a destination, applying at most one
	// coupon code. An unknown jurisdiction prices at tax rate zero.
	Quote(ctx context.Context, lines []*entity.CartViewLine, couponCode, countryCode, stateCode string) (*PriceQuote, error)

	// ValidateCoupon checks redeemability of a coupon for a user and subtotal
	// without consuming a redemption.
	ValidateCoupon(ctx context.Context, code string, userID uuid.UUID, subtotal decimal.Decimal) (*CouponValidation, error)

	// ApplyCoupon consumes one redemption inside the caller's transaction: it
	// re-checks the limit under a row lock, bumps the usage count and records
	// the usage row for the order.
	ApplyCoupon(ctx context.Context, repos repository.RepositoryFactory, couponID, orderID, userID uuid.UUID, discount decimal.Decimal) error
}
