package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is returned when a cart row is not found.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the persistence operations for cart rows. One row
// exists per (owner, product); deleting is the only way to reach quantity zero.
type CartRepository interface {
	// CreateItem persists a new cart row.
	CreateItem(ctx context.Context, item *entity.CartItem) error

	// FindItem retrieves the row for one (owner, product) pair.
	FindItem(ctx context.Context, owner entity.CartOwner, productID uuid.UUID) (*entity.CartItem, error)

	// FindItemsByOwner retrieves all rows of an owner's cart, oldest first.
	FindItemsByOwner(ctx context.Context, owner entity.CartOwner) ([]*entity.CartItem, error)

	// UpdateQuantity sets the quantity of an existing row.
	UpdateQuantity(ctx context.Context, owner entity.CartOwner, productID uuid.UUID, quantity int) error

	// DeleteItem removes one row.
	DeleteItem(ctx context.Context, owner entity.CartOwner, productID uuid.UUID) error

	// ClearOwner removes every row belonging to an owner.
	ClearOwner(ctx context.Context, owner entity.CartOwner) error
}
