package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// InventoryMovementRepository is the append-only store for the stock ledger.
// Movements are written in the same transaction as the stock change they
// record and are never updated or deleted.
type InventoryMovementRepository interface {
	// Append persists a new movement row.
	Append(ctx context.Context, movement *entity.InventoryMovement) error

	// FindByProduct retrieves all movements of a product in timestamp order.
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.InventoryMovement, error)
}
