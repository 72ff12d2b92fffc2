// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines read access to the product catalog plus the single
// stock-write operation used by the inventory ledger. No other component may
// write stock_quantity.
type ProductRepository interface {
	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs retrieves multiple products at once; missing IDs are simply absent
	// from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// FindByIDForUpdate retrieves a product under an exclusive row lock
	// (SELECT ... FOR UPDATE). Only meaningful inside a transaction; the lock is
	// held until that transaction commits or rolls back.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// UpdateStockQuantity writes the new stock level for a product. Callers must
	// hold the row lock obtained via FindByIDForUpdate.
	UpdateStockQuantity(ctx context.Context, id uuid.UUID, quantity int) error
}
