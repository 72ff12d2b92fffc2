package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CouponModel is the GORM-specific struct for the 'coupons' table.
type CouponModel struct {
	ID                uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code              string           `gorm:"uniqueIndex;not null"`
	DiscountType      string           `gorm:"type:varchar(20);not null"`
	DiscountValue     decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	MinPurchaseAmount decimal.Decimal  `gorm:"type:decimal(10,2);not null;default:0"`
	MaxDiscountAmount *decimal.Decimal `gorm:"type:decimal(10,2)"`
	UsageLimit        *int
	UsageCount        int       `gorm:"not null;default:0"`
	StartsAt          time.Time `gorm:"not null"`
	EndsAt            time.Time `gorm:"not null"`
	IsActive          bool      `gorm:"not null;default:true;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}

// CouponUsageModel is the GORM-specific struct for the 'coupon_usage' table.
// The unique index on (coupon_id, user_id) is the database-level guarantee
// that a user redeems a coupon at most once.
type CouponUsageModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CouponID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_coupon_usage_coupon_user,priority:1"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_coupon_usage_coupon_user,priority:2"`
	OrderID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponUsageModel) TableName() string {
	return "coupon_usage"
}
