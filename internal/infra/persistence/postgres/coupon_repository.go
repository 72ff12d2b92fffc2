package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// couponRepository implements the repository.CouponRepository interface.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{
		db: db,
	}
}

// FindByCode retrieves a coupon by its redemption code. The lookup is
// case-sensitive.
func (repo *couponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by code")
	}

	return toCouponDomain(&couponM), nil
}

// FindByIDForUpdate retrieves a coupon under an exclusive row lock so the
// usage limit can be re-checked without racing another redemption.
func (repo *couponRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to lock coupon row")
	}

	return toCouponDomain(&couponM), nil
}

// IncrementUsage bumps the coupon's usage count by one.
func (repo *couponRepository) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("id = ?", id).
		Update("usage_count", gorm.Expr("usage_count + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment coupon usage")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// CreateUsage persists a redemption record. The unique index on
// (coupon_id, user_id) turns a repeat redemption into ErrDuplicateCouponUsage.
func (repo *couponRepository) CreateUsage(ctx context.Context, usage *entity.CouponUsage) error {
	usageM := fromCouponUsageDomain(usage)

	if err := repo.db.WithContext(ctx).Create(usageM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCouponUsage
		}

		return errors.Wrap(err, "failed to create coupon usage")
	}

	usage.ID = usageM.ID
	usage.CreatedAt = usageM.CreatedAt

	return nil
}

// HasUsage reports whether the user has already redeemed the coupon.
func (repo *couponRepository) HasUsage(ctx context.Context, couponID, userID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CouponUsageModel{}).
		Where("coupon_id = ? AND user_id = ?", couponID, userID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count coupon usage")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

// toCouponDomain converts a GORM CouponModel to a domain Coupon entity.
func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	if data == nil {
		return nil
	}

	return &entity.Coupon{
		ID:                data.ID,
		Code:              data.Code,
		DiscountType:      entity.DiscountType(data.DiscountType),
		DiscountValue:     data.DiscountValue,
		MinPurchaseAmount: data.MinPurchaseAmount,
		MaxDiscountAmount: data.MaxDiscountAmount,
		UsageLimit:        data.UsageLimit,
		UsageCount:        data.UsageCount,
		StartsAt:          data.StartsAt,
		EndsAt:            data.EndsAt,
		IsActive:          data.IsActive,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromCouponUsageDomain converts a domain CouponUsage entity to its GORM model.
func fromCouponUsageDomain(data *entity.CouponUsage) *model.CouponUsageModel {
	if data == nil {
		return nil
	}

	return &model.CouponUsageModel{
		ID:             data.ID,
		CouponID:       data.CouponID,
		UserID:         data.UserID,
		OrderID:        data.OrderID,
		DiscountAmount: data.DiscountAmount,
		CreatedAt:      data.CreatedAt,
	}
}
