package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxRateModel is the GORM-specific struct for the 'tax_rates' table.
// StateCode NULL marks the country-wide fallback row.
type TaxRateModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CountryCode string          `gorm:"type:char(2);not null;index:idx_tax_rates_jurisdiction,priority:1"`
	StateCode   *string         `gorm:"type:varchar(10);index:idx_tax_rates_jurisdiction,priority:2"`
	Rate        decimal.Decimal `gorm:"type:decimal(6,3);not null"`
	StartsAt    time.Time       `gorm:"not null"`
	EndsAt      *time.Time
	IsActive    bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaxRateModel) TableName() string {
	return "tax_rates"
}
