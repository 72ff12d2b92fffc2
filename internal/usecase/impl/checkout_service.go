package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

const defaultCurrency = "USD"

type checkoutService struct {
	cartUsecase      usecase.CartUsecase
	pricingUsecase   usecase.PricingUsecase
	inventoryUsecase usecase.InventoryUsecase
	txManager        repository.TransactionManager
	gateway          service.PaymentGateway
	logger           *slog.Logger
	currency         string
}

// NewCheckoutService creates a new checkout orchestrator instance
func NewCheckoutService(
	cartUsecase usecase.CartUsecase,
	pricingUsecase usecase.PricingUsecase,
	inventoryUsecase usecase.InventoryUsecase,
	txManager repository.TransactionManager,
	gateway service.PaymentGateway,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	currency := defaultCurrency
	if cfg.Checkout != nil && cfg.Checkout.Currency != "" {
		currency = cfg.Checkout.Currency
	}

	return &checkoutService{
		cartUsecase:      cartUsecase,
		pricingUsecase:   pricingUsecase,
		inventoryUsecase: inventoryUsecase,
		txManager:        txManager,
		gateway:          gateway,
		logger:           logger,
		currency:         currency,
	}
}

// Checkout places an order from the owner's cart. The order insert, the
// ledger decrements, the coupon redemption, the gateway intent and the cart
// clear share one transaction: if any step fails, nothing happened.
func (s *checkoutService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*usecase.CheckoutResult, error) {
	ctx = usecase.WithTaxRateCache(ctx)

	view, err := s.cartUsecase.GetCart(ctx, input.Owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart for checkout")
	}
	if len(view.Lines) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	// The per-user exclusivity check happens before the transaction; the
	// unique usage index backstops it inside.
	if input.CouponCode != "" {
		if _, err := s.pricingUsecase.ValidateCoupon(ctx, input.CouponCode, input.UserID, view.Subtotal); err != nil {
			return nil, err
		}
	}

	// Advisory pre-check over the whole cart, so the customer learns about
	// every short line at once instead of one retry at a time. The locked
	// decrements below stay authoritative.
	var shortages []*domainerrors.InsufficientStockError

	for _, line := range view.Lines {
		availability, err := s.inventoryUsecase.CheckAvailability(ctx, line.Product.ID, line.Quantity)
		if err != nil {
			return nil, err
		}
		if !availability.Available {
			shortages = append(shortages, domainerrors.NewInsufficientStockError(
				line.Product.ID.String(), line.Product.Name, line.Quantity, availability.Remaining))
		}
	}

	if len(shortages) > 0 {
		return nil, domainerrors.NewInsufficientStockListError(shortages)
	}

	quote, err := s.pricingUsecase.Quote(ctx, view.Lines, input.CouponCode, input.Shipping.CountryCode, input.Shipping.State)
	if err != nil {
		return nil, err
	}

	order := s.buildOrder(input, quote, view.Lines)

	var clientSecret string

	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		orderRepo := repos.NewOrderRepository()

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		// Authoritative availability check: each decrement locks its product
		// row and fails the whole checkout when policy forbids it.
		for _, line := range view.Lines {
			if _, err := s.inventoryUsecase.DecrementForOrder(ctx, repos, line.Product.ID, order.ID, line.Quantity); err != nil {
				return err
			}
		}

		if quote.CouponID != nil {
			if err := s.pricingUsecase.ApplyCoupon(ctx, repos, *quote.CouponID, order.ID, input.UserID, quote.DiscountAmount); err != nil {
				return err
			}
		}

		// The gateway call sits inside the transaction on purpose: a gateway
		// failure must roll back the order and the stock decrements.
		intent, err := s.gateway.CreateIntent(ctx, &service.PaymentIntentRequest{
			OrderID:  order.ID,
			Amount:   quote.Total,
			Currency: s.currency,
			Metadata: map[string]string{"order_id": order.ID.String()},
		})
		if err != nil {
			s.logger.ErrorContext(ctx, "payment gateway create intent failed",
				slog.String("order_id", order.ID.String()),
				slog.Any("error", err))

			return domainerrors.ErrPaymentGatewayFailed
		}

		if err := orderRepo.UpdatePaymentIntentID(ctx, order.ID, intent.ID); err != nil {
			return errors.Wrap(err, "failed to store payment intent reference")
		}

		order.PaymentIntentID = intent.ID
		clientSecret = intent.ClientSecret

		return repos.NewCartRepository().ClearOwner(ctx, input.Owner)
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "checkout completed",
		slog.String("order_id", order.ID.String()),
		slog.String("user_id", input.UserID.String()),
		slog.String("total", order.TotalAmount.String()))

	return &usecase.CheckoutResult{
		Order:        order,
		ClientSecret: clientSecret,
	}, nil
}

// buildOrder freezes the quote into an order entity awaiting persistence.
func (s *checkoutService) buildOrder(input *usecase.CheckoutInput, quote *usecase.PriceQuote, lines []*entity.CartViewLine) *entity.Order {
	items := make([]*entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, &entity.OrderItem{
			ProductID:       line.Product.ID,
			Quantity:        line.Quantity,
			PriceAtPurchase: line.Product.Price,
		})
	}

	return &entity.Order{
		UserID:          input.UserID,
		Subtotal:        quote.Subtotal,
		DiscountAmount:  quote.DiscountAmount,
		ShippingCost:    quote.ShippingCost,
		TaxAmount:       quote.TaxAmount,
		TotalAmount:     quote.Total,
		Currency:        s.currency,
		ShippingName:    input.Shipping.Name,
		ShippingAddress: input.Shipping.Address,
		ShippingCity:    input.Shipping.City,
		ShippingState:   input.Shipping.State,
		ShippingZip:     input.Shipping.Zip,
		ShippingCountry: input.Shipping.CountryCode,
		Status:          entity.OrderStatusProcessing,
		PaymentStatus:   entity.PaymentStatusPending,
		Items:           items,
	}
}
