package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taxRateRepository implements the repository.TaxRateRepository interface.
type taxRateRepository struct {
	db *gorm.DB
}

// NewTaxRateRepository is the constructor for taxRateRepository.
func NewTaxRateRepository(db *gorm.DB) repository.TaxRateRepository {
	return &taxRateRepository{
		db: db,
	}
}

// FindActiveRate retrieves the best active, date-valid rate for a
// jurisdiction. Ordering state_code NULLS LAST makes the state-specific row
// win over the country-wide fallback when both match.
func (repo *taxRateRepository) FindActiveRate(ctx context.Context, countryCode, stateCode string) (*entity.TaxRate, error) {
	now := time.Now()

	query := repo.db.WithContext(ctx).
		Where("country_code = ?", countryCode).
		Where("is_active = ?", true).
		Where("starts_at <= ?", now).
		Where("ends_at IS NULL OR ends_at >= ?", now)

	if stateCode != "" {
		query = query.Where("state_code = ? OR state_code IS NULL", stateCode)
	} else {
		query = query.Where("state_code IS NULL")
	}

	var rateM model.TaxRateModel

	if err := query.
		Order("state_code NULLS LAST").
		First(&rateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaxRateNotFound
		}

		return nil, errors.Wrap(err, "failed to find active tax rate")
	}

	return toTaxRateDomain(&rateM), nil
}

// --- Mapper Functions ---

// toTaxRateDomain converts a GORM TaxRateModel to a domain TaxRate entity.
func toTaxRateDomain(data *model.TaxRateModel) *entity.TaxRate {
	if data == nil {
		return nil
	}

	return &entity.TaxRate{
		ID:          data.ID,
		CountryCode: data.CountryCode,
		StateCode:   data.StateCode,
		Rate:        data.Rate,
		StartsAt:    data.StartsAt,
		EndsAt:      data.EndsAt,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
