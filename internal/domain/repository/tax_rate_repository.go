package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrTaxRateNotFound is returned when no jurisdiction row matches a lookup.
// Callers treat this as rate zero; it is a lookup miss, not a failure.
var ErrTaxRateNotFound = errors.New("tax rate not found")

// TaxRateRepository defines lookup of jurisdiction tax rates.
type TaxRateRepository interface {
	// FindActiveRate retrieves the active, date-valid rate for a jurisdiction.
	// A state-specific row wins over the country-wide (state NULL) row. state may
	// be empty, in which case only the country-wide row can match.
	FindActiveRate(ctx context.Context, countryCode, stateCode string) (*entity.TaxRate, error)
}
