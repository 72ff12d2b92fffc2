package model

import (
	"time"

	"github.com/google/uuid"
)

// InventoryMovementModel is the GORM-specific struct for the
// 'inventory_movements' table. Rows are append-only: there is no UpdatedAt and
// no soft delete, and no repository method ever mutates an existing row.
type InventoryMovementModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID        uuid.UUID `gorm:"type:uuid;not null;index:idx_movements_product_created,priority:1"`
	QuantityChange   int       `gorm:"not null"`
	PreviousQuantity int       `gorm:"not null"`
	NewQuantity      int       `gorm:"not null"`
	Type             string    `gorm:"type:varchar(20);not null"`
	ReferenceID      string    `gorm:"index"`
	Actor            string
	CreatedAt        time.Time `gorm:"index:idx_movements_product_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (InventoryMovementModel) TableName() string {
	return "inventory_movements"
}
