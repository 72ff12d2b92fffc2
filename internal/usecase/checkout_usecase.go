package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ShippingInfo is the validated destination for a checkout.
type ShippingInfo struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address" validate:"required"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	CountryCode string `json:"country_code" validate:"required,iso3166_1_alpha2"`
}

// CheckoutInput carries everything a checkout needs besides the cart itself.
type CheckoutInput struct {
	UserID     uuid.UUID
	Owner      entity.CartOwner
	Shipping   ShippingInfo
	CouponCode string
}

// CheckoutResult is returned on a successful checkout. ClientSecret lets the
// caller complete the payment with the gateway out-of-band.
type CheckoutResult struct {
	Order        *entity.Order `json:"order"`
	ClientSecret string        `json:"client_secret"`
}

// CheckoutUsecase turns a cart into an order. The whole conversion is one
// database transaction: availability check, order insert, ledger decrements,
// coupon redemption and the gateway intent either all happen or none do.
type CheckoutUsecase interface {
	// Checkout places an order from the owner's cart. On success the cart is
	// cleared and the order is left in processing state awaiting the
	// gateway's asynchronous outcome.
	Checkout(ctx context.Context, input *CheckoutInput) (*CheckoutResult, error)
}
