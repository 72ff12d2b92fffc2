// Package usecase defines the application-level contracts between the HTTP
// delivery layer and the business services implementing them.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartView is the reconciled view of a cart: every line joined with live
// product data, priced at current catalog prices.
type CartView struct {
	Lines    []*entity.CartViewLine `json:"lines"`
	Subtotal decimal.Decimal        `json:"subtotal"`
}

// CartUsecase defines the interface for cart management use cases. All
// operations take the owner key explicitly; guest and user carts share the
// same code path.
type CartUsecase interface {
	// AddItem adds quantity units of a product to the cart, summing with any
	// existing line for the same product.
	AddItem(ctx context.Context, owner entity.CartOwner, productID uuid.UUID, quantity int) error

	// UpdateItemQuantity sets a line's quantity. Zero removes the line.
	UpdateItemQuantity(ctx context.Context, owner entity.CartOwner, productID uuid.UUID, quantity int) error

	// RemoveItem deletes a line from the cart.
	RemoveItem(ctx context.Context, owner entity.CartOwner, productID uuid.UUID) error

	// GetCart reconciles the cart against the live catalog. Lines whose
	// product was deleted or deactivated are dropped from the stored cart;
	// lines exceeding available stock carry a warning but stay.
	GetCart(ctx context.Context, owner entity.CartOwner) (*CartView, error)

	// MergeGuestCart folds a guest session cart into the user's persisted
	// cart on login. Quantities of shared products are summed; the guest cart
	// is cleared afterwards even if it was empty.
	MergeGuestCart(ctx context.Context, sessionOwner entity.CartOwner, userID uuid.UUID) error

	// ClearCart removes every line of the owner's cart.
	ClearCart(ctx context.Context, owner entity.CartOwner) error
}
