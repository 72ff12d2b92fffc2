package entity

import (
	"time"

	"github.com/google/uuid"
)

// MovementType classifies why stock changed.
type MovementType string

const (
	// MovementOrder records a decrement caused by a checkout.
	MovementOrder MovementType = "order"
	// MovementReturn records a compensating credit (cancellation, refund restock).
	MovementReturn MovementType = "return"
	// MovementAdjustment records a manual stock correction by an operator.
	MovementAdjustment MovementType = "adjustment"
)

// InventoryMovement is one immutable entry of the stock ledger. Movements are
// only ever appended, in the same transaction as the stock change they record,
// and never updated or deleted afterwards.
type InventoryMovement struct {
	ID               uuid.UUID    `json:"id"`
	ProductID        uuid.UUID    `json:"product_id"`
	QuantityChange   int          `json:"quantity_change"`   // Signed delta; negative for sales, positive for credits.
	PreviousQuantity int          `json:"previous_quantity"` // Stock read under the row lock before the write.
	NewQuantity      int          `json:"new_quantity"`      // Stock after the write. previous + change = new.
	Type             MovementType `json:"type"`
	ReferenceID      string       `json:"reference_id"` // Order ID or adjustment reference this movement belongs to.
	Actor            string       `json:"actor"`
	CreatedAt        time.Time    `json:"created_at"`
}

// Consistent reports whether the movement's own arithmetic holds.
func (m *InventoryMovement) Consistent() bool {
	return m.PreviousQuantity+m.QuantityChange == m.NewQuantity
}

// ReplayStock folds a product's movements (in timestamp order) over its
// initial stock. The result must equal the product's current stock quantity;
// this is the ledger property the movement trail exists to guarantee.
func ReplayStock(initialStock int, movements []*InventoryMovement) int {
	quantity := initialStock
	for _, movement := range movements {
		quantity += movement.QuantityChange
	}

	return quantity
}
