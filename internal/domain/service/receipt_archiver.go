package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// ReceiptArchiver stores an immutable receipt document for a paid order.
// Archiving is best-effort and runs after the reconciliation transaction
// commits; a failure is logged, never propagated.
type ReceiptArchiver interface {
	// Store writes the receipt for the given order.
	Store(ctx context.Context, order *entity.Order) error

	// Close releases any resources held by the archiver.
	Close() error
}
