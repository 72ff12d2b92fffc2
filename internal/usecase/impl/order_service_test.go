package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	orderRepo        *mockRepo.MockOrderRepository
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	inventoryUsecase *mockUsecase.MockInventoryUsecase
	qrcodeService    *mockService.MockQRCodeService
	service          *orderService
}

func newOrderFixture(t *testing.T) *orderFixture {
	f := &orderFixture{
		orderRepo:        mockRepo.NewMockOrderRepository(t),
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		inventoryUsecase: mockUsecase.NewMockInventoryUsecase(t),
		qrcodeService:    mockService.NewMockQRCodeService(t),
	}

	f.service = NewOrderService(f.orderRepo, f.txManager, f.inventoryUsecase, f.qrcodeService, discardLogger()).(*orderService)

	return f
}

func (f *orderFixture) joinTransaction(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func TestOrderService_GetOrder_EnforcesOwnership(t *testing.T) {
	f := newOrderFixture(t)

	ctx := context.Background()
	orderID := uuid.New()
	ownerID := uuid.New()
	strangerID := uuid.New()

	f.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: ownerID}, nil).
		Times(3)

	_, err := f.service.GetOrder(ctx, orderID, strangerID, false)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	order, err := f.service.GetOrder(ctx, orderID, ownerID, false)
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)

	// Admins read any order.
	_, err = f.service.GetOrder(ctx, orderID, strangerID, true)
	require.NoError(t, err)
}

func TestOrderService_CancelOrder_RestoresStock(t *testing.T) {
	f := newOrderFixture(t)

	ctx := context.Background()
	orderID := uuid.New()
	userID := uuid.New()
	productA := uuid.New()
	productB := uuid.New()

	order := &entity.Order{
		ID:            orderID,
		UserID:        userID,
		Status:        entity.OrderStatusProcessing,
		PaymentStatus: entity.PaymentStatusPending,
		Items: []*entity.OrderItem{
			{ProductID: productA, Quantity: 2},
			{ProductID: productB, Quantity: 1},
		},
	}

	f.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(order, nil)

	f.joinTransaction(ctx)
	f.factory.EXPECT().NewOrderRepository().Return(f.orderRepo)

	f.orderRepo.EXPECT().
		FindByIDForUpdate(ctx, orderID).
		Return(&entity.Order{
			ID:            orderID,
			UserID:        userID,
			Status:        entity.OrderStatusProcessing,
			PaymentStatus: entity.PaymentStatusPending,
		}, nil)

	f.orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusCancelled, entity.PaymentStatusPending).
		Return(nil)

	f.inventoryUsecase.EXPECT().
		CreditReturn(ctx, f.factory, productA, orderID, 2).
		Return(&entity.InventoryMovement{}, nil)
	f.inventoryUsecase.EXPECT().
		CreditReturn(ctx, f.factory, productB, orderID, 1).
		Return(&entity.InventoryMovement{}, nil)

	cancelled, err := f.service.CancelOrder(ctx, orderID, userID, false)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
}

func TestOrderService_CancelOrder_ShippedOrderConflicts(t *testing.T) {
	f := newOrderFixture(t)

	ctx := context.Background()
	orderID := uuid.New()
	userID := uuid.New()

	f.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusShipped}, nil)

	f.joinTransaction(ctx)
	f.factory.EXPECT().NewOrderRepository().Return(f.orderRepo)

	// The locked read is authoritative; shipped has no edge to cancelled.
	f.orderRepo.EXPECT().
		FindByIDForUpdate(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusShipped}, nil)

	_, err := f.service.CancelOrder(ctx, orderID, userID, false)
	assert.ErrorIs(t, err, domainerrors.ErrOrderStateConflict)
	f.inventoryUsecase.AssertNotCalled(t, "CreditReturn", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_MarkShipped(t *testing.T) {
	f := newOrderFixture(t)

	ctx := context.Background()
	orderID := uuid.New()

	f.joinTransaction(ctx)
	f.factory.EXPECT().NewOrderRepository().Return(f.orderRepo)

	f.orderRepo.EXPECT().
		FindByIDForUpdate(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPaid}, nil)
	f.orderRepo.EXPECT().
		UpdateFulfillment(ctx, orderID, entity.OrderStatusShipped, "TRACK123").
		Return(nil)

	order, err := f.service.MarkShipped(ctx, orderID, "TRACK123")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, order.Status)
	assert.Equal(t, "TRACK123", order.TrackingNumber)
}

func TestOrderService_MarkShipped_UnpaidOrderConflicts(t *testing.T) {
	f := newOrderFixture(t)

	ctx := context.Background()
	orderID := uuid.New()

	f.joinTransaction(ctx)
	f.factory.EXPECT().NewOrderRepository().Return(f.orderRepo)

	f.orderRepo.EXPECT().
		FindByIDForUpdate(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusProcessing}, nil)

	_, err := f.service.MarkShipped(ctx, orderID, "TRACK123")
	assert.ErrorIs(t, err, domainerrors.ErrOrderStateConflict)
}

func TestOrderService_MarkDelivered_KeepsTrackingNumber(t *testing.T) {
	f := newOrderFixture(t)

	ctx := context.Background()
	orderID := uuid.New()

	f.joinTransaction(ctx)
	f.factory.EXPECT().NewOrderRepository().Return(f.orderRepo)

	f.orderRepo.EXPECT().
		FindByIDForUpdate(ctx, orderID).
		Return(&entity.Order{
			ID:             orderID,
			Status:         entity.OrderStatusShipped,
			TrackingNumber: "TRACK123",
		}, nil)
	f.orderRepo.EXPECT().
		UpdateFulfillment(ctx, orderID, entity.OrderStatusDelivered, "TRACK123").
		Return(nil)

	order, err := f.service.MarkDelivered(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, "TRACK123", order.TrackingNumber)
}

func TestOrderService_PickupQR(t *testing.T) {
	f := newOrderFixture(t)

	ctx := context.Background()
	orderID := uuid.New()
	userID := uuid.New()

	f.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusPaid}, nil)

	f.qrcodeService.EXPECT().
		GeneratePickupQR(orderID).
		Return([]byte("png-bytes"), nil)

	png, err := f.service.PickupQR(ctx, orderID, userID, false)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestOrderService_PickupQR_RequiresPaidOrder(t *testing.T) {
	f := newOrderFixture(t)

	ctx := context.Background()
	orderID := uuid.New()
	userID := uuid.New()

	f.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusProcessing}, nil)

	_, err := f.service.PickupQR(ctx, orderID, userID, false)
	assert.ErrorIs(t, err, domainerrors.ErrOrderStateConflict)
	f.qrcodeService.AssertNotCalled(t, "GeneratePickupQR", mock.Anything)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	f := newOrderFixture(t)

	ctx := context.Background()
	orderID := uuid.New()

	f.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	_, err := f.service.GetOrder(ctx, orderID, uuid.New(), false)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
