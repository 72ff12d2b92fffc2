package impl

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	cartUsecase      *mockUsecase.MockCartUsecase
	pricingUsecase   *mockUsecase.MockPricingUsecase
	inventoryUsecase *mockUsecase.MockInventoryUsecase
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	orderRepo        *mockRepo.MockOrderRepository
	cartRepo         *mockRepo.MockCartRepository
	gateway          *mockService.MockPaymentGateway
	service          usecase.CheckoutUsecase
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	f := &checkoutFixture{
		cartUsecase:      mockUsecase.NewMockCartUsecase(t),
		pricingUsecase:   mockUsecase.NewMockPricingUsecase(t),
		inventoryUsecase: mockUsecase.NewMockInventoryUsecase(t),
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		orderRepo:        mockRepo.NewMockOrderRepository(t),
		cartRepo:         mockRepo.NewMockCartRepository(t),
		gateway:          mockService.NewMockPaymentGateway(t),
	}

	f.service = NewCheckoutService(
		f.cartUsecase,
		f.pricingUsecase,
		f.inventoryUsecase,
		f.txManager,
		f.gateway,
		&config.Config{},
		discardLogger(),
	)

	return f
}

// joinTransaction makes the transaction manager hand the callback the mocked
// repository factory, standing in for a real database transaction.
func (f *checkoutFixture) joinTransaction() {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func checkoutInput(owner entity.CartOwner, userID uuid.UUID) *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		UserID: userID,
		Owner:  owner,
		Shipping: usecase.ShippingInfo{
			Name:        "Pat Doe",
			Address:     "1 Main St",
			City:        "Portland",
			State:       "OR",
			Zip:         "97201",
			CountryCode: "US",
		},
	}
}

func TestCheckoutService_Checkout(t *testing.T) {
	f := newCheckoutFixture(t)

	userID := uuid.New()
	owner := entity.UserOwner(userID)
	orderID := uuid.New()
	productID := uuid.New()
	input := checkoutInput(owner, userID)

	lines := []*entity.CartViewLine{
		{Product: &entity.Product{ID: productID, Name: "Mug", Price: decimal.NewFromInt(15)}, Quantity: 3},
	}

	// Checkout reprices under a fresh tax rate cache, so the context the
	// collaborators see is not the caller's.
	f.cartUsecase.EXPECT().
		GetCart(mock.Anything, owner).
		Return(&usecase.CartView{Lines: lines, Subtotal: decimal.NewFromInt(45)}, nil)

	f.inventoryUsecase.EXPECT().
		CheckAvailability(mock.Anything, productID, 3).
		Return(&usecase.Availability{ProductID: productID, Available: true, Remaining: 20}, nil)

	quote := &usecase.PriceQuote{
		Subtotal:       decimal.NewFromInt(45),
		DiscountAmount: decimal.Zero,
		ShippingCost:   decimal.RequireFromString("5.99"),
		TaxAmount:      decimal.RequireFromString("3.71"),
		Total:          decimal.RequireFromString("54.70"),
	}
	f.pricingUsecase.EXPECT().
		Quote(mock.Anything, lines, "", "US", "OR").
		Return(quote, nil)

	f.joinTransaction()
	f.factory.EXPECT().NewOrderRepository().Return(f.orderRepo)
	f.factory.EXPECT().NewCartRepository().Return(f.cartRepo)

	f.orderRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = orderID
			assert.Equal(t, entity.OrderStatusProcessing, order.Status)
			assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
			assert.True(t, order.TotalAmount.Equal(quote.Total))
			require.Len(t, order.Items, 1)
			assert.Equal(t, productID, order.Items[0].ProductID)
			assert.True(t, order.Items[0].PriceAtPurchase.Equal(decimal.NewFromInt(15)))
		}).
		Return(nil)

	f.inventoryUsecase.EXPECT().
		DecrementForOrder(mock.Anything, f.factory, productID, orderID, 3).
		Return(&entity.InventoryMovement{}, nil)

	f.gateway.EXPECT().
		CreateIntent(mock.Anything, mock.AnythingOfType("*service.PaymentIntentRequest")).
		Run(func(ctx context.Context, req *service.PaymentIntentRequest) {
			assert.Equal(t, orderID, req.OrderID)
			assert.True(t, req.Amount.Equal(quote.Total))
			assert.Equal(t, "USD", req.Currency)
		}).
		Return(&service.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret"}, nil)

	f.orderRepo.EXPECT().
		UpdatePaymentIntentID(mock.Anything, orderID, "pi_123").
		Return(nil)

	f.cartRepo.EXPECT().
		ClearOwner(mock.Anything, owner).
		Return(nil)

	result, err := f.service.Checkout(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "pi_123_secret", result.ClientSecret)
	assert.Equal(t, "pi_123", result.Order.PaymentIntentID)
	assert.True(t, result.Order.TotalAmount.Equal(quote.Total), "totals are frozen from the quote")
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)

	userID := uuid.New()
	owner := entity.UserOwner(userID)

	f.cartUsecase.EXPECT().
		GetCart(mock.Anything, owner).
		Return(&usecase.CartView{Subtotal: decimal.Zero}, nil)

	_, err := f.service.Checkout(context.Background(), checkoutInput(owner, userID))
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_Checkout_GatewayFailureRollsBack(t *testing.T) {
	f := newCheckoutFixture(t)

	userID := uuid.New()
	owner := entity.UserOwner(userID)
	productID := uuid.New()

	lines := []*entity.CartViewLine{
		{Product: &entity.Product{ID: productID, Price: decimal.NewFromInt(20)}, Quantity: 1},
	}

	f.cartUsecase.EXPECT().
		GetCart(mock.Anything, owner).
		Return(&usecase.CartView{Lines: lines, Subtotal: decimal.NewFromInt(20)}, nil)

	f.inventoryUsecase.EXPECT().
		CheckAvailability(mock.Anything, productID, 1).
		Return(&usecase.Availability{ProductID: productID, Available: true, Remaining: 8}, nil)

	f.pricingUsecase.EXPECT().
		Quote(mock.Anything, lines, "", "US", "OR").
		Return(&usecase.PriceQuote{
			Subtotal:     decimal.NewFromInt(20),
			ShippingCost: decimal.RequireFromString("5.99"),
			Total:        decimal.RequireFromString("25.99"),
		}, nil)

	f.joinTransaction()
	f.factory.EXPECT().NewOrderRepository().Return(f.orderRepo)

	f.orderRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	f.inventoryUsecase.EXPECT().
		DecrementForOrder(mock.Anything, f.factory, productID, mock.Anything, 1).
		Return(&entity.InventoryMovement{}, nil)

	f.gateway.EXPECT().
		CreateIntent(mock.Anything, mock.AnythingOfType("*service.PaymentIntentRequest")).
		Return(nil, errors.New("gateway timeout"))

	// The transaction callback errors, so the intent reference is never stored
	// and the cart is never cleared.
	_, err := f.service.Checkout(context.Background(), checkoutInput(owner, userID))
	assert.ErrorIs(t, err, domainerrors.ErrPaymentGatewayFailed)
	f.orderRepo.AssertNotCalled(t, "UpdatePaymentIntentID", mock.Anything, mock.Anything, mock.Anything)
	f.cartRepo.AssertNotCalled(t, "ClearOwner", mock.Anything, mock.Anything)
}

func TestCheckoutService_Checkout_ReportsEveryShortLineAtOnce(t *testing.T) {
	f := newCheckoutFixture(t)

	userID := uuid.New()
	owner := entity.UserOwner(userID)
	mugID := uuid.New()
	kettleID := uuid.New()
	beansID := uuid.New()

	lines := []*entity.CartViewLine{
		{Product: &entity.Product{ID: mugID, Name: "Mug", Price: decimal.NewFromInt(20)}, Quantity: 5, StockWarning: true},
		{Product: &entity.Product{ID: kettleID, Name: "Kettle", Price: decimal.NewFromInt(40)}, Quantity: 1},
		{Product: &entity.Product{ID: beansID, Name: "Espresso Beans", Price: decimal.NewFromInt(12)}, Quantity: 4, StockWarning: true},
	}

	f.cartUsecase.EXPECT().
		GetCart(mock.Anything, owner).
		Return(&usecase.CartView{Lines: lines, Subtotal: decimal.NewFromInt(188)}, nil)

	f.inventoryUsecase.EXPECT().
		CheckAvailability(mock.Anything, mugID, 5).
		Return(&usecase.Availability{ProductID: mugID, Available: false, Remaining: 2}, nil)
	f.inventoryUsecase.EXPECT().
		CheckAvailability(mock.Anything, kettleID, 1).
		Return(&usecase.Availability{ProductID: kettleID, Available: true, Remaining: 6}, nil)
	f.inventoryUsecase.EXPECT().
		CheckAvailability(mock.Anything, beansID, 4).
		Return(&usecase.Availability{ProductID: beansID, Available: false, Remaining: 0}, nil)

	_, err := f.service.Checkout(context.Background(), checkoutInput(owner, userID))

	// Every short line is reported in one pass, before any order row or stock
	// decrement is written.
	var got *domainerrors.InsufficientStockListError
	require.True(t, errors.As(err, &got))
	require.Len(t, got.Lines, 2)
	assert.Equal(t, mugID.String(), got.Lines[0].ProductID)
	assert.Equal(t, 2, got.Lines[0].Remaining)
	assert.Equal(t, beansID.String(), got.Lines[1].ProductID)
	assert.Equal(t, 0, got.Lines[1].Remaining)
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	f.inventoryUsecase.AssertNotCalled(t, "DecrementForOrder",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckoutService_Checkout_DecrementRaceStillFailsTheOrder(t *testing.T) {
	f := newCheckoutFixture(t)

	userID := uuid.New()
	owner := entity.UserOwner(userID)
	productID := uuid.New()

	lines := []*entity.CartViewLine{
		{Product: &entity.Product{ID: productID, Name: "Mug", Price: decimal.NewFromInt(20)}, Quantity: 5},
	}

	f.cartUsecase.EXPECT().
		GetCart(mock.Anything, owner).
		Return(&usecase.CartView{Lines: lines, Subtotal: decimal.NewFromInt(100)}, nil)

	// The unlocked pre-check passes, but a concurrent order drains the stock
	// before this transaction takes the row lock.
	f.inventoryUsecase.EXPECT().
		CheckAvailability(mock.Anything, productID, 5).
		Return(&usecase.Availability{ProductID: productID, Available: true, Remaining: 5}, nil)

	f.pricingUsecase.EXPECT().
		Quote(mock.Anything, lines, "", "US", "OR").
		Return(&usecase.PriceQuote{
			Subtotal: decimal.NewFromInt(100),
			Total:    decimal.NewFromInt(100),
		}, nil)

	f.joinTransaction()
	f.factory.EXPECT().NewOrderRepository().Return(f.orderRepo)

	f.orderRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	stockErr := domainerrors.NewInsufficientStockError(productID.String(), "Mug", 5, 2)
	f.inventoryUsecase.EXPECT().
		DecrementForOrder(mock.Anything, f.factory, productID, mock.Anything, 5).
		Return(nil, stockErr)

	_, err := f.service.Checkout(context.Background(), checkoutInput(owner, userID))

	var got *domainerrors.InsufficientStockError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, 2, got.Remaining)
	f.gateway.AssertNotCalled(t, "CreateIntent", mock.Anything, mock.Anything)
}

func TestCheckoutService_Checkout_WithCoupon(t *testing.T) {
	f := newCheckoutFixture(t)

	userID := uuid.New()
	owner := entity.UserOwner(userID)
	orderID := uuid.New()
	productID := uuid.New()
	couponID := uuid.New()

	input := checkoutInput(owner, userID)
	input.CouponCode = "TENOFF"

	lines := []*entity.CartViewLine{
		{Product: &entity.Product{ID: productID, Price: decimal.NewFromInt(100)}, Quantity: 1},
	}

	f.cartUsecase.EXPECT().
		GetCart(mock.Anything, owner).
		Return(&usecase.CartView{Lines: lines, Subtotal: decimal.NewFromInt(100)}, nil)

	// Per-user exclusivity is checked before the transaction opens.
	f.pricingUsecase.EXPECT().
		ValidateCoupon(mock.Anything, "TENOFF", userID, decimal.NewFromInt(100)).
		Return(&usecase.CouponValidation{Discount: decimal.NewFromInt(10)}, nil)

	f.inventoryUsecase.EXPECT().
		CheckAvailability(mock.Anything, productID, 1).
		Return(&usecase.Availability{ProductID: productID, Available: true, Remaining: 3}, nil)

	discount := decimal.NewFromInt(10)
	f.pricingUsecase.EXPECT().
		Quote(mock.Anything, lines, "TENOFF", "US", "OR").
		Return(&usecase.PriceQuote{
			Subtotal:       decimal.NewFromInt(100),
			DiscountAmount: discount,
			Total:          decimal.NewFromInt(90),
			CouponID:       &couponID,
		}, nil)

	f.joinTransaction()
	f.factory.EXPECT().NewOrderRepository().Return(f.orderRepo)
	f.factory.EXPECT().NewCartRepository().Return(f.cartRepo)

	f.orderRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = orderID
		}).
		Return(nil)

	f.inventoryUsecase.EXPECT().
		DecrementForOrder(mock.Anything, f.factory, productID, orderID, 1).
		Return(&entity.InventoryMovement{}, nil)

	f.pricingUsecase.EXPECT().
		ApplyCoupon(mock.Anything, f.factory, couponID, orderID, userID, discount).
		Return(nil)

	f.gateway.EXPECT().
		CreateIntent(mock.Anything, mock.AnythingOfType("*service.PaymentIntentRequest")).
		Return(&service.PaymentIntent{ID: "pi_456", ClientSecret: "pi_456_secret"}, nil)

	f.orderRepo.EXPECT().
		UpdatePaymentIntentID(mock.Anything, orderID, "pi_456").
		Return(nil)

	f.cartRepo.EXPECT().
		ClearOwner(mock.Anything, owner).
		Return(nil)

	result, err := f.service.Checkout(context.Background(), input)
	require.NoError(t, err)
	assert.True(t, result.Order.DiscountAmount.Equal(discount))
}

func TestCheckoutService_Checkout_UsedCouponRejectedBeforeTransaction(t *testing.T) {
	f := newCheckoutFixture(t)

	userID := uuid.New()
	owner := entity.UserOwner(userID)
	input := checkoutInput(owner, userID)
	input.CouponCode = "ONEPERUSER"

	lines := []*entity.CartViewLine{
		{Product: &entity.Product{ID: uuid.New(), Price: decimal.NewFromInt(40)}, Quantity: 1},
	}

	f.cartUsecase.EXPECT().
		GetCart(mock.Anything, owner).
		Return(&usecase.CartView{Lines: lines, Subtotal: decimal.NewFromInt(40)}, nil)

	f.pricingUsecase.EXPECT().
		ValidateCoupon(mock.Anything, "ONEPERUSER", userID, decimal.NewFromInt(40)).
		Return(nil, domainerrors.ErrCouponAlreadyUsed)

	_, err := f.service.Checkout(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrCouponAlreadyUsed)
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
