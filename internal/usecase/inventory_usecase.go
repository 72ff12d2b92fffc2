package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

// Availability is the answer to a non-mutating stock question: can this
// quantity be fulfilled right now, and how many units remain.
type Availability struct {
	ProductID uuid.UUID
	Available bool
	Remaining int
}

// InventoryUsecase is the stock ledger. Every stock mutation flows through
// here so the movement trail stays complete: read under row lock, check
// policy, write stock and movement together.
type InventoryUsecase interface {
	// CheckAvailability reports whether quantity units of a product can be
	// fulfilled, without taking any lock. The answer is advisory: only the
	// locked decrement is authoritative.
	CheckAvailability(ctx context.Context, productID uuid.UUID, quantity int) (*Availability, error)

	// DecrementForOrder decrements stock for one order line inside the
	// caller's transaction. The caller passes its repository factory so the
	// lock, the stock write and the movement append share that transaction.
	// Returns the movement recorded, or domainerrors.InsufficientStockError
	// when the backorder policy forbids the decrement.
	DecrementForOrder(ctx context.Context, repos repository.RepositoryFactory, productID, orderID uuid.UUID, quantity int) (*entity.InventoryMovement, error)

	// CreditReturn restores stock for a returned or cancelled order line,
	// inside the caller's transaction.
	CreditReturn(ctx context.Context, repos repository.RepositoryFactory, productID, orderID uuid.UUID, quantity int) (*entity.InventoryMovement, error)

	// Adjust applies a manual operator correction as its own transaction.
	// delta may be negative; the backorder policy still applies.
	Adjust(ctx context.Context, productID uuid.UUID, delta int, reference, actor string) (*entity.InventoryMovement, error)

	// MovementHistory returns a product's full movement trail, oldest first.
	MovementHistory(ctx context.Context, productID uuid.UUID) ([]*entity.InventoryMovement, error)

	// VerifyLedger replays a product's movements over its initial stock and
	// reports whether the result matches the current stock quantity.
	VerifyLedger(ctx context.Context, productID uuid.UUID) (bool, error)
}
