package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxRate is a jurisdiction tax configuration row. A row with a StateCode
// applies to that state only; a row with StateCode nil applies country-wide.
// Lookup prefers the state-specific row over the country-wide one.
type TaxRate struct {
	ID          uuid.UUID       `json:"id"`
	CountryCode string          `json:"country_code"` // ISO 3166-1 alpha-2.
	StateCode   *string         `json:"state_code,omitempty"`
	Rate        decimal.Decimal `json:"rate"` // Percentage, e.g. 8.25 for 8.25%.
	StartsAt    time.Time       `json:"starts_at"`
	EndsAt      *time.Time      `json:"ends_at,omitempty"` // nil means open-ended.
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ValidAt reports whether the rate is active and date-valid at the given time.
func (r *TaxRate) ValidAt(at time.Time) bool {
	if !r.IsActive || at.Before(r.StartsAt) {
		return false
	}

	return r.EndsAt == nil || !at.After(*r.EndsAt)
}
