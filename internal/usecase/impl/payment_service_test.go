package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentFixture struct {
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	orderRepo  *mockRepo.MockOrderRepository
	outboxRepo *mockRepo.MockOutboxRepository
	gateway    *mockService.MockPaymentGateway
	archiver   *mockService.MockReceiptArchiver
	service    *paymentService
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	f := &paymentFixture{
		txManager:  mockRepo.NewMockTransactionManager(t),
		factory:    mockRepo.NewMockRepositoryFactory(t),
		orderRepo:  mockRepo.NewMockOrderRepository(t),
		outboxRepo: mockRepo.NewMockOutboxRepository(t),
		gateway:    mockService.NewMockPaymentGateway(t),
		archiver:   mockService.NewMockReceiptArchiver(t),
	}

	f.service = NewPaymentService(f.txManager, f.gateway, f.archiver, discardLogger()).(*paymentService)

	return f
}

func (f *paymentFixture) joinTransaction(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func TestPaymentService_HandleWebhook_InvalidSignature(t *testing.T) {
	f := newPaymentFixture(t)

	f.gateway.EXPECT().
		VerifyWebhook([]byte(`{}`), "bad-signature").
		Return(nil, errors.New("signature mismatch"))

	err := f.service.HandleWebhook(context.Background(), []byte(`{}`), "bad-signature")
	assert.ErrorIs(t, err, domainerrors.ErrWebhookSignatureInvalid)
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestPaymentService_ApplyGatewayEvent_Succeeded(t *testing.T) {
	f := newPaymentFixture(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{
		ID:              orderID,
		UserID:          uuid.New(),
		Status:          entity.OrderStatusProcessing,
		PaymentStatus:   entity.PaymentStatusPending,
		PaymentIntentID: "pi_123",
		TotalAmount:     decimal.RequireFromString("55.20"),
	}

	f.joinTransaction(ctx)
	f.factory.EXPECT().NewOrderRepository().Return(f.orderRepo)
	f.factory.EXPECT().NewOutboxRepository().Return(f.outboxRepo)

	f.orderRepo.EXPECT().
		FindByPaymentIntentIDForUpdate(ctx, "pi_123").
		Return(order, nil)
	f.orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusPaid, entity.PaymentStatusSucceeded).
		Return(nil)

	f.outboxRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.OutboxEvent")).
		Run(func(ctx context.Context, event *entity.OutboxEvent) {
			assert.Equal(t, "evt_1", event.EventID)
			assert.Equal(t, constants.OutboxTopicPaymentOutcome, event.Topic)
			assert.Equal(t, orderID.String(), event.Key)
		}).
		Return(nil)

	// Receipt archiving happens after the transaction, only for paid orders.
	f.archiver.EXPECT().
		Store(ctx, order).
		Return(nil)

	err := f.service.ApplyGatewayEvent(ctx, &service.GatewayEvent{
		ID:       "evt_1",
		Type:     service.GatewayEventSucceeded,
		IntentID: "pi_123",
	})
	require.NoError(t, err)
}

func TestPaymentService_ApplyGatewayEvent_ReplayedSuccessIsAcked(t *testing.T) {
	f := newPaymentFixture(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:            uuid.New(),
		Status:        entity.OrderStatusPaid,
		PaymentStatus: entity.PaymentStatusSucceeded,
	}

	f.joinTransaction(ctx)
	f.factory.EXPECT().NewOrderRepository().Return(f.orderRepo)

	f.orderRepo.EXPECT().
		FindByPaymentIntentIDForUpdate(ctx, "pi_123").
		Return(order, nil)

	// Paid has no edge back to paid, so the redelivery is acknowledged without
	// touching the order.
	err := f.service.ApplyGatewayEvent(ctx, &service.GatewayEvent{
		ID:       "evt_1",
		Type:     service.GatewayEventSucceeded,
		IntentID: "pi_123",
	})
	require.NoError(t, err)
	f.orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.archiver.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestPaymentService_ApplyGatewayEvent_StaleFailureAfterSuccessIsAcked(t *testing.T) {
	f := newPaymentFixture(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:            uuid.New(),
		Status:        entity.OrderStatusShipped,
		PaymentStatus: entity.PaymentStatusSucceeded,
	}

	f.joinTransaction(ctx)
	f.factory.EXPECT().NewOrderRepository().Return(f.orderRepo)

	f.orderRepo.EXPECT().
		FindByPaymentIntentIDForUpdate(ctx, "pi_123").
		Return(order, nil)

	err := f.service.ApplyGatewayEvent(ctx, &service.GatewayEvent{
		ID:       "evt_2",
		Type:     service.GatewayEventFailed,
		IntentID: "pi_123",
	})
	require.NoError(t, err)
	f.orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_ApplyGatewayEvent_UnknownIntentIsAcked(t *testing.T) {
	f := newPaymentFixture(t)

	ctx := context.Background()

	f.joinTransaction(ctx)
	f.factory.EXPECT().NewOrderRepository().Return(f.orderRepo)

	f.orderRepo.EXPECT().
		FindByPaymentIntentIDForUpdate(ctx, "pi_unknown").
		Return(nil, repository.ErrOrderNotFound)

	err := f.service.ApplyGatewayEvent(ctx, &service.GatewayEvent{
		ID:       "evt_1",
		Type:     service.GatewayEventSucceeded,
		IntentID: "pi_unknown",
	})
	require.NoError(t, err)
}

func TestPaymentService_ApplyGatewayEvent_UnknownTypeIsAckedWithoutTransaction(t *testing.T) {
	f := newPaymentFixture(t)

	err := f.service.ApplyGatewayEvent(context.Background(), &service.GatewayEvent{
		ID:   "evt_1",
		Type: service.GatewayEventType("payment_intent.exploded"),
	})
	require.NoError(t, err)
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestPaymentService_ApplyGatewayEvent_FailedOutcome(t *testing.T) {
	f := newPaymentFixture(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{
		ID:            orderID,
		UserID:        uuid.New(),
		Status:        entity.OrderStatusProcessing,
		PaymentStatus: entity.PaymentStatusPending,
	}

	f.joinTransaction(ctx)
	f.factory.EXPECT().NewOrderRepository().Return(f.orderRepo)
	f.factory.EXPECT().NewOutboxRepository().Return(f.outboxRepo)

	f.orderRepo.EXPECT().
		FindByPaymentIntentIDForUpdate(ctx, "pi_123").
		Return(order, nil)
	f.orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusPaymentFailed, entity.PaymentStatusFailed).
		Return(nil)
	f.outboxRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.OutboxEvent")).
		Return(nil)

	err := f.service.ApplyGatewayEvent(ctx, &service.GatewayEvent{
		ID:       "evt_3",
		Type:     service.GatewayEventFailed,
		IntentID: "pi_123",
	})
	require.NoError(t, err)
	f.archiver.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestPaymentService_ApplyGatewayEvent_ArchiveFailureDoesNotUnreconcile(t *testing.T) {
	f := newPaymentFixture(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		Status:        entity.OrderStatusProcessing,
		PaymentStatus: entity.PaymentStatusPending,
	}

	f.joinTransaction(ctx)
	f.factory.EXPECT().NewOrderRepository().Return(f.orderRepo)
	f.factory.EXPECT().NewOutboxRepository().Return(f.outboxRepo)

	f.orderRepo.EXPECT().
		FindByPaymentIntentIDForUpdate(ctx, "pi_123").
		Return(order, nil)
	f.orderRepo.EXPECT().
		UpdateStatus(ctx, order.ID, entity.OrderStatusPaid, entity.PaymentStatusSucceeded).
		Return(nil)
	f.outboxRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.OutboxEvent")).
		Return(nil)

	f.archiver.EXPECT().
		Store(ctx, order).
		Return(errors.New("blob store unavailable"))

	err := f.service.ApplyGatewayEvent(ctx, &service.GatewayEvent{
		ID:       "evt_4",
		Type:     service.GatewayEventSucceeded,
		IntentID: "pi_123",
	})
	require.NoError(t, err, "archive failures stay out of the reconciliation result")
}
