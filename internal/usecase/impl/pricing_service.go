package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

type pricingService struct {
	couponRepo            repository.CouponRepository
	taxRateRepo           repository.TaxRateRepository
	logger                *slog.Logger
	shippingFee           decimal.Decimal
	freeShippingThreshold decimal.Decimal
}

// NewPricingService creates a new pricing service instance
func NewPricingService(
	couponRepo repository.CouponRepository,
	taxRateRepo repository.TaxRateRepository,
	cfg *config.Config,
	logger *slog.Logger,
) (usecase.PricingUsecase, error) {
	// Sensible defaults keep local development working without a checkout
	// section in the YAML file.
	checkout := cfg.Checkout
	if checkout == nil {
		checkout = &config.CheckoutConfig{
			Currency:              "USD",
			ShippingFee:           "5.99",
			FreeShippingThreshold: "50",
		}
	}

	shippingFee, err := decimal.NewFromString(checkout.ShippingFee)
	if err != nil {
		return nil, errors.Wrap(err, "invalid shipping fee")
	}

	freeShippingThreshold, err := decimal.NewFromString(checkout.FreeShippingThreshold)
	if err != nil {
		return nil, errors.Wrap(err, "invalid free shipping threshold")
	}

	return &pricingService{
		couponRepo:            couponRepo,
		taxRateRepo:           taxRateRepo,
		logger:                logger,
		shippingFee:           shippingFee,
		freeShippingThreshold: freeShippingThreshold,
	}, nil
}

// Quote prices the given lines for a destination.
func (s *pricingService) Quote(ctx context.Context, lines []*entity.CartViewLine, couponCode, countryCode, stateCode string) (*usecase.PriceQuote, error) {
	if len(lines) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	quote := &usecase.PriceQuote{
		Lines:          make([]*usecase.QuoteLine, 0, len(lines)),
		Subtotal:       decimal.Zero,
		DiscountAmount: decimal.Zero,
	}

	for _, line := range lines {
		lineTotal := line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		quote.Lines = append(quote.Lines, &usecase.QuoteLine{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price,
			LineTotal: lineTotal,
		})
		quote.Subtotal = quote.Subtotal.Add(lineTotal)
	}

	if couponCode != "" {
		coupon, err := s.checkCoupon(ctx, couponCode, quote.Subtotal)
		if err != nil {
			return nil, err
		}

		quote.DiscountAmount = coupon.DiscountFor(quote.Subtotal)
		quote.CouponID = &coupon.ID
	}

	discounted := quote.Subtotal.Sub(quote.DiscountAmount)

	// Free shipping is decided on the undiscounted subtotal, so a coupon can
	// never cost the customer the free shipping they already earned.
	quote.ShippingCost = s.shippingFee
	if quote.Subtotal.GreaterThanOrEqual(s.freeShippingThreshold) {
		quote.ShippingCost = decimal.Zero
	}

	rate, err := s.taxRate(ctx, countryCode, stateCode)
	if err != nil {
		return nil, err
	}

	// Tax applies to the discounted merchandise only, never to shipping.
	quote.TaxRate = rate
	quote.TaxRateDisplay = usecase.FormatRate(rate)
	quote.TaxAmount = discounted.Mul(rate).Div(oneHundred).Round(2)
	quote.Total = discounted.Add(quote.ShippingCost).Add(quote.TaxAmount)

	return quote, nil
}

// taxRate resolves the jurisdiction rate, consulting the per-request cache
// first. An unknown jurisdiction prices at zero rather than failing the quote.
func (s *pricingService) taxRate(ctx context.Context, countryCode, stateCode string) (decimal.Decimal, error) {
	cacheKey := countryCode + "|" + stateCode

	cache, cached := usecase.TaxRateCacheFrom(ctx)
	if cached {
		if rate, ok := cache[cacheKey]; ok {
			return rate, nil
		}
	}

	var rate decimal.Decimal

	taxRate, err := s.taxRateRepo.FindActiveRate(ctx, countryCode, stateCode)
	switch {
	case err == nil:
		rate = taxRate.Rate
	case errors.Is(err, repository.ErrTaxRateNotFound):
		s.logger.DebugContext(ctx, "no tax rate for jurisdiction, pricing at zero",
			slog.String("country", countryCode),
			slog.String("state", stateCode))
		rate = decimal.Zero
	default:
		return decimal.Zero, errors.Wrap(err, "failed to look up tax rate")
	}

	if cached {
		cache[cacheKey] = rate
	}

	return rate, nil
}

// checkCoupon verifies redeemability without any per-user state.
func (s *pricingService) checkCoupon(ctx context.Context, code string, subtotal decimal.Decimal) (*entity.Coupon, error) {
	coupon, err := s.couponRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, domainerrors.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to load coupon")
	}

	if !coupon.RedeemableAt(time.Now()) {
		return nil, domainerrors.ErrCouponExpired
	}
	if !coupon.HasUsageLeft() {
		return nil, domainerrors.ErrCouponUsageLimitReached
	}
	if !coupon.MeetsMinPurchase(subtotal) {
		return nil, domainerrors.ErrCouponMinPurchase
	}

	return coupon, nil
}

// ValidateCoupon checks redeemability of a coupon for a user and subtotal
// without consuming a redemption.
func (s *pricingService) ValidateCoupon(ctx context.Context, code string, userID uuid.UUID, subtotal decimal.Decimal) (*usecase.CouponValidation, error) {
	coupon, err := s.checkCoupon(ctx, code, subtotal)
	if err != nil {
		return nil, err
	}

	used, err := s.couponRepo.HasUsage(ctx, coupon.ID, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check coupon usage")
	}
	if used {
		return nil, domainerrors.ErrCouponAlreadyUsed
	}

	return &usecase.CouponValidation{
		Coupon:   coupon,
		Discount: coupon.DiscountFor(subtotal),
	}, nil
}

// ApplyCoupon consumes one redemption inside the caller's transaction. The
// usage limit is re-checked under the coupon's row lock; the unique usage
// index backstops the per-user exclusivity.
func (s *pricingService) ApplyCoupon(ctx context.Context, repos repository.RepositoryFactory, couponID, orderID, userID uuid.UUID, discount decimal.Decimal) error {
	couponRepo := repos.NewCouponRepository()

	coupon, err := couponRepo.FindByIDForUpdate(ctx, couponID)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return domainerrors.ErrCouponNotFound
		}

		return errors.Wrap(err, "failed to lock coupon")
	}

	if !coupon.HasUsageLeft() {
		return domainerrors.ErrCouponUsageLimitReached
	}

	if err := couponRepo.IncrementUsage(ctx, couponID); err != nil {
		return errors.Wrap(err, "failed to increment coupon usage")
	}

	usage := &entity.CouponUsage{
		CouponID:       couponID,
		OrderID:        orderID,
		UserID:         userID,
		DiscountAmount: discount,
	}

	if err := couponRepo.CreateUsage(ctx, usage); err != nil {
		if errors.Is(err, repository.ErrDuplicateCouponUsage) {
			return domainerrors.ErrCouponAlreadyUsed
		}

		return errors.Wrap(err, "failed to record coupon usage")
	}

	return nil
}
