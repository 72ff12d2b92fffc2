package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPricingFixture(t *testing.T) (*mockRepo.MockCouponRepository, *mockRepo.MockTaxRateRepository, usecase.PricingUsecase) {
	mockCouponRepo := mockRepo.NewMockCouponRepository(t)
	mockTaxRateRepo := mockRepo.NewMockTaxRateRepository(t)

	service, err := NewPricingService(mockCouponRepo, mockTaxRateRepo, &config.Config{}, discardLogger())
	require.NoError(t, err)

	return mockCouponRepo, mockTaxRateRepo, service
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func quoteLines(products ...*entity.Product) []*entity.CartViewLine {
	lines := make([]*entity.CartViewLine, 0, len(products))
	for _, product := range products {
		lines = append(lines, &entity.CartViewLine{Product: product, Quantity: 1})
	}

	return lines
}

func TestPricingService_Quote(t *testing.T) {
	_, mockTaxRateRepo, service := newPricingFixture(t)

	ctx := context.Background()
	lines := []*entity.CartViewLine{
		{Product: &entity.Product{ID: uuid.New(), Name: "Mug", Price: decimal.NewFromInt(10)}, Quantity: 2},
		{Product: &entity.Product{ID: uuid.New(), Name: "Kettle", Price: decimal.NewFromInt(25)}, Quantity: 1},
	}

	mockTaxRateRepo.EXPECT().
		FindActiveRate(ctx, "US", "CA").
		Return(&entity.TaxRate{Rate: decimal.RequireFromString("8.25")}, nil)

	quote, err := service.Quote(ctx, lines, "", "US", "CA")
	require.NoError(t, err)

	assert.True(t, quote.Subtotal.Equal(decimal.NewFromInt(45)), "subtotal = %s", quote.Subtotal)
	assert.True(t, quote.ShippingCost.Equal(decimal.RequireFromString("5.99")), "shipping = %s", quote.ShippingCost)
	// 45 * 8.25% rounded to cents. Shipping is never taxed.
	assert.True(t, quote.TaxAmount.Equal(decimal.RequireFromString("3.71")), "tax = %s", quote.TaxAmount)
	assert.True(t, quote.Total.Equal(decimal.RequireFromString("54.70")), "total = %s", quote.Total)
	assert.Equal(t, "8.25%", quote.TaxRateDisplay)
	assert.Nil(t, quote.CouponID)
}

func TestPricingService_Quote_CouponKeepsFreeShipping(t *testing.T) {
	mockCouponRepo, mockTaxRateRepo, service := newPricingFixture(t)

	ctx := context.Background()
	lines := quoteLines(&entity.Product{ID: uuid.New(), Price: decimal.NewFromInt(55)})

	mockCouponRepo.EXPECT().
		FindByCode(ctx, "TAKE10").
		Return(&entity.Coupon{
			ID:            uuid.New(),
			Code:          "TAKE10",
			DiscountType:  entity.DiscountFixed,
			DiscountValue: decimal.NewFromInt(10),
			IsActive:      true,
			StartsAt:      time.Now().Add(-time.Hour),
			EndsAt:        time.Now().Add(time.Hour),
		}, nil)

	mockTaxRateRepo.EXPECT().
		FindActiveRate(ctx, "US", "OR").
		Return(&entity.TaxRate{Rate: decimal.Zero}, nil)

	quote, err := service.Quote(ctx, lines, "TAKE10", "US", "OR")
	require.NoError(t, err)

	// The $55 subtotal earned free shipping; the coupon dropping the payable
	// amount under the threshold must not take it back.
	assert.True(t, quote.ShippingCost.IsZero(), "shipping = %s", quote.ShippingCost)
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(45)), "total = %s", quote.Total)
}

func TestPricingService_Quote_FreeShippingOverThreshold(t *testing.T) {
	_, mockTaxRateRepo, service := newPricingFixture(t)

	ctx := context.Background()
	lines := quoteLines(&entity.Product{ID: uuid.New(), Price: decimal.NewFromInt(50)})

	mockTaxRateRepo.EXPECT().
		FindActiveRate(ctx, "US", "OR").
		Return(&entity.TaxRate{Rate: decimal.Zero}, nil)

	quote, err := service.Quote(ctx, lines, "", "US", "OR")
	require.NoError(t, err)

	assert.True(t, quote.ShippingCost.IsZero(), "threshold itself earns free shipping")
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(50)))
}

func TestPricingService_Quote_CouponCapAndUnknownJurisdiction(t *testing.T) {
	mockCouponRepo, mockTaxRateRepo, service := newPricingFixture(t)

	ctx := context.Background()
	couponID := uuid.New()
	lines := quoteLines(&entity.Product{ID: uuid.New(), Price: decimal.NewFromInt(100)})

	maxDiscount := decimal.NewFromInt(5)
	mockCouponRepo.EXPECT().
		FindByCode(ctx, "TENOFF").
		Return(&entity.Coupon{
			ID:                couponID,
			Code:              "TENOFF",
			DiscountType:      entity.DiscountPercentage,
			DiscountValue:     decimal.NewFromInt(10),
			MaxDiscountAmount: &maxDiscount,
			IsActive:          true,
			StartsAt:          time.Now().Add(-time.Hour),
			EndsAt:            time.Now().Add(time.Hour),
		}, nil)

	// Unknown jurisdictions price at rate zero instead of failing the quote.
	mockTaxRateRepo.EXPECT().
		FindActiveRate(ctx, "ZZ", "").
		Return(nil, repository.ErrTaxRateNotFound)

	quote, err := service.Quote(ctx, lines, "TENOFF", "ZZ", "")
	require.NoError(t, err)

	assert.True(t, quote.DiscountAmount.Equal(decimal.NewFromInt(5)), "10%% of $100 capped at $5")
	assert.True(t, quote.TaxAmount.IsZero())
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(95)), "total = %s", quote.Total)
	require.NotNil(t, quote.CouponID)
	assert.Equal(t, couponID, *quote.CouponID)
}

func TestPricingService_Quote_EmptyCart(t *testing.T) {
	_, _, service := newPricingFixture(t)

	_, err := service.Quote(context.Background(), nil, "", "US", "CA")
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestPricingService_Quote_ExpiredCoupon(t *testing.T) {
	mockCouponRepo, _, service := newPricingFixture(t)

	ctx := context.Background()

	mockCouponRepo.EXPECT().
		FindByCode(ctx, "BYGONE").
		Return(&entity.Coupon{
			Code:          "BYGONE",
			DiscountType:  entity.DiscountFixed,
			DiscountValue: decimal.NewFromInt(5),
			IsActive:      true,
			StartsAt:      time.Now().Add(-48 * time.Hour),
			EndsAt:        time.Now().Add(-time.Hour),
		}, nil)

	_, err := service.Quote(ctx, quoteLines(&entity.Product{ID: uuid.New(), Price: decimal.NewFromInt(30)}), "BYGONE", "US", "CA")
	assert.ErrorIs(t, err, domainerrors.ErrCouponExpired)
}

func TestPricingService_Quote_TaxRateCachedPerRequest(t *testing.T) {
	_, mockTaxRateRepo, service := newPricingFixture(t)

	ctx := usecase.WithTaxRateCache(context.Background())
	lines := quoteLines(&entity.Product{ID: uuid.New(), Price: decimal.NewFromInt(20)})

	mockTaxRateRepo.EXPECT().
		FindActiveRate(ctx, "US", "NY").
		Return(&entity.TaxRate{Rate: decimal.NewFromInt(4)}, nil).
		Once()

	_, err := service.Quote(ctx, lines, "", "US", "NY")
	require.NoError(t, err)

	// Second quote on the same request context must not hit the repository.
	_, err = service.Quote(ctx, lines, "", "US", "NY")
	require.NoError(t, err)
}

func TestPricingService_ValidateCoupon_AlreadyUsed(t *testing.T) {
	mockCouponRepo, _, service := newPricingFixture(t)

	ctx := context.Background()
	couponID := uuid.New()
	userID := uuid.New()

	mockCouponRepo.EXPECT().
		FindByCode(ctx, "ONEPERUSER").
		Return(&entity.Coupon{
			ID:            couponID,
			Code:          "ONEPERUSER",
			DiscountType:  entity.DiscountFixed,
			DiscountValue: decimal.NewFromInt(5),
			IsActive:      true,
			StartsAt:      time.Now().Add(-time.Hour),
			EndsAt:        time.Now().Add(time.Hour),
		}, nil)

	mockCouponRepo.EXPECT().
		HasUsage(ctx, couponID, userID).
		Return(true, nil)

	_, err := service.ValidateCoupon(ctx, "ONEPERUSER", userID, decimal.NewFromInt(40))
	assert.ErrorIs(t, err, domainerrors.ErrCouponAlreadyUsed)
}

func TestPricingService_ApplyCoupon(t *testing.T) {
	mockCouponRepo, _, service := newPricingFixture(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)

	ctx := context.Background()
	couponID := uuid.New()
	orderID := uuid.New()
	userID := uuid.New()
	discount := decimal.NewFromInt(5)

	mockFactory.EXPECT().NewCouponRepository().Return(mockCouponRepo)

	mockCouponRepo.EXPECT().
		FindByIDForUpdate(ctx, couponID).
		Return(&entity.Coupon{ID: couponID, IsActive: true}, nil)
	mockCouponRepo.EXPECT().
		IncrementUsage(ctx, couponID).
		Return(nil)
	mockCouponRepo.EXPECT().
		CreateUsage(ctx, mock.AnythingOfType("*entity.CouponUsage")).
		Run(func(ctx context.Context, usage *entity.CouponUsage) {
			assert.Equal(t, couponID, usage.CouponID)
			assert.Equal(t, orderID, usage.OrderID)
			assert.Equal(t, userID, usage.UserID)
			assert.True(t, usage.DiscountAmount.Equal(discount))
		}).
		Return(nil)

	err := service.ApplyCoupon(ctx, mockFactory, couponID, orderID, userID, discount)
	require.NoError(t, err)
}

func TestPricingService_ApplyCoupon_DuplicateUsage(t *testing.T) {
	mockCouponRepo, _, service := newPricingFixture(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)

	ctx := context.Background()
	couponID := uuid.New()

	mockFactory.EXPECT().NewCouponRepository().Return(mockCouponRepo)

	mockCouponRepo.EXPECT().
		FindByIDForUpdate(ctx, couponID).
		Return(&entity.Coupon{ID: couponID, IsActive: true}, nil)
	mockCouponRepo.EXPECT().
		IncrementUsage(ctx, couponID).
		Return(nil)
	mockCouponRepo.EXPECT().
		CreateUsage(ctx, mock.AnythingOfType("*entity.CouponUsage")).
		Return(repository.ErrDuplicateCouponUsage)

	err := service.ApplyCoupon(ctx, mockFactory, couponID, uuid.New(), uuid.New(), decimal.NewFromInt(5))
	assert.ErrorIs(t, err, domainerrors.ErrCouponAlreadyUsed)
}

func TestPricingService_ApplyCoupon_LimitReachedUnderLock(t *testing.T) {
	mockCouponRepo, _, service := newPricingFixture(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)

	ctx := context.Background()
	couponID := uuid.New()
	limit := 100

	mockFactory.EXPECT().NewCouponRepository().Return(mockCouponRepo)

	mockCouponRepo.EXPECT().
		FindByIDForUpdate(ctx, couponID).
		Return(&entity.Coupon{
			ID:         couponID,
			IsActive:   true,
			UsageLimit: &limit,
			UsageCount: 100,
		}, nil)

	err := service.ApplyCoupon(ctx, mockFactory, couponID, uuid.New(), uuid.New(), decimal.NewFromInt(5))
	assert.ErrorIs(t, err, domainerrors.ErrCouponUsageLimitReached)
}
