// Package model contains the GORM-specific structs mapped to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name              string          `gorm:"not null"`
	Price             decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StockQuantity     int             `gorm:"not null;default:0"`
	BackorderAllowed  bool            `gorm:"not null;default:false"`
	LowStockThreshold int             `gorm:"not null;default:5"`
	InitialStock      int             `gorm:"not null;default:0"`
	IsActive          bool            `gorm:"not null;default:true;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
