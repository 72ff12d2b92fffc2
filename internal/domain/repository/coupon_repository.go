package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for coupon persistence.
var (
	// ErrCouponNotFound is returned when a coupon is not found.
	ErrCouponNotFound = errors.New("coupon not found")
	// ErrDuplicateCouponUsage is returned when a (coupon, user) usage row already exists.
	ErrDuplicateCouponUsage = errors.New("coupon usage already exists")
)

// CouponRepository defines the persistence operations for coupons and their
// usage records.
type CouponRepository interface {
	// FindByCode retrieves a coupon by its redemption code.
	FindByCode(ctx context.Context, code string) (*entity.Coupon, error)

	// FindByIDForUpdate retrieves a coupon under an exclusive row lock so the
	// usage limit can be re-checked race-free inside a transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)

	// IncrementUsage bumps the coupon's usage count by one.
	IncrementUsage(ctx context.Context, id uuid.UUID) error

	// CreateUsage persists a redemption record. Returns ErrDuplicateCouponUsage
	// when the (coupon, user) pair already redeemed.
	CreateUsage(ctx context.Context, usage *entity.CouponUsage) error

	// HasUsage reports whether the user has already redeemed the coupon.
	HasUsage(ctx context.Context, couponID, userID uuid.UUID) (bool, error)
}
