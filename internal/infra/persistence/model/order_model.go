package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DiscountAmount  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	ShippingCost    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	TaxAmount       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Currency        string          `gorm:"type:char(3);not null"`
	ShippingName    string          `gorm:"not null"`
	ShippingAddress string          `gorm:"not null"`
	ShippingCity    string          `gorm:"not null"`
	ShippingState   string
	ShippingZip     string
	ShippingCountry string `gorm:"type:char(2);not null"`
	Status        string `gorm:"type:varchar(20);not null;index"`
	PaymentStatus string `gorm:"type:varchar(20);not null"`
	// Nullable: the intent does not exist yet when the order row is inserted,
	// and a unique index over empty strings would serialize all checkouts.
	PaymentIntentID *string `gorm:"uniqueIndex"`
	TrackingNumber  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// Price carries the catalog price frozen at checkout time.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
