package impl

import (
	"context"
	"errors"
	"testing"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInventoryFixture(t *testing.T) (*mockRepo.MockProductRepository, *mockRepo.MockInventoryMovementRepository, *mockRepo.MockOutboxRepository, *mockRepo.MockRepositoryFactory, *mockRepo.MockTransactionManager, *inventoryService) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockMovementRepo := mockRepo.NewMockInventoryMovementRepository(t)
	mockOutboxRepo := mockRepo.NewMockOutboxRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockTxManager := mockRepo.NewMockTransactionManager(t)

	service := NewInventoryService(mockProductRepo, mockMovementRepo, mockTxManager, &config.Config{}).(*inventoryService)

	return mockProductRepo, mockMovementRepo, mockOutboxRepo, mockFactory, mockTxManager, service
}

func TestInventoryService_CheckAvailability(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	t.Run("fulfillable quantity", func(t *testing.T) {
		mockProductRepo, _, _, _, _, service := newInventoryFixture(t)

		mockProductRepo.EXPECT().
			FindByID(ctx, productID).
			Return(&entity.Product{ID: productID, StockQuantity: 10}, nil)

		availability, err := service.CheckAvailability(ctx, productID, 3)
		require.NoError(t, err)
		assert.True(t, availability.Available)
		assert.Equal(t, 10, availability.Remaining)
	})

	t.Run("short stock reports what remains", func(t *testing.T) {
		mockProductRepo, _, _, _, _, service := newInventoryFixture(t)

		mockProductRepo.EXPECT().
			FindByID(ctx, productID).
			Return(&entity.Product{ID: productID, StockQuantity: 2}, nil)

		availability, err := service.CheckAvailability(ctx, productID, 5)
		require.NoError(t, err)
		assert.False(t, availability.Available)
		assert.Equal(t, 2, availability.Remaining)
	})

	t.Run("backordered product is available with zero remaining", func(t *testing.T) {
		mockProductRepo, _, _, _, _, service := newInventoryFixture(t)

		mockProductRepo.EXPECT().
			FindByID(ctx, productID).
			Return(&entity.Product{ID: productID, StockQuantity: -3, BackorderAllowed: true}, nil)

		availability, err := service.CheckAvailability(ctx, productID, 5)
		require.NoError(t, err)
		assert.True(t, availability.Available)
		assert.Equal(t, 0, availability.Remaining, "remaining never goes negative")
	})

	t.Run("unknown product", func(t *testing.T) {
		mockProductRepo, _, _, _, _, service := newInventoryFixture(t)

		mockProductRepo.EXPECT().
			FindByID(ctx, productID).
			Return(nil, repository.ErrProductNotFound)

		_, err := service.CheckAvailability(ctx, productID, 1)
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestInventoryService_DecrementForOrder(t *testing.T) {
	mockProductRepo, mockMovementRepo, _, mockFactory, _, service := newInventoryFixture(t)

	ctx := context.Background()
	productID := uuid.New()
	orderID := uuid.New()

	mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
	mockFactory.EXPECT().NewInventoryMovementRepository().Return(mockMovementRepo)

	mockProductRepo.EXPECT().
		FindByIDForUpdate(ctx, productID).
		Return(&entity.Product{
			ID:            productID,
			Name:          "Espresso Beans",
			StockQuantity: 10,
			InitialStock:  100,
		}, nil)

	mockProductRepo.EXPECT().
		UpdateStockQuantity(ctx, productID, 7).
		Return(nil)

	mockMovementRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.InventoryMovement")).
		Run(func(ctx context.Context, movement *entity.InventoryMovement) {
			assert.Equal(t, -3, movement.QuantityChange)
			assert.Equal(t, 10, movement.PreviousQuantity)
			assert.Equal(t, 7, movement.NewQuantity)
			assert.Equal(t, entity.MovementOrder, movement.Type)
			assert.Equal(t, orderID.String(), movement.ReferenceID)
			assert.Equal(t, constants.ActorCheckout, movement.Actor)
		}).
		Return(nil)

	movement, err := service.DecrementForOrder(ctx, mockFactory, productID, orderID, 3)
	require.NoError(t, err)
	assert.True(t, movement.Consistent())
}

func TestInventoryService_DecrementForOrder_InsufficientStock(t *testing.T) {
	mockProductRepo, _, _, mockFactory, _, service := newInventoryFixture(t)

	ctx := context.Background()
	productID := uuid.New()

	mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)

	mockProductRepo.EXPECT().
		FindByIDForUpdate(ctx, productID).
		Return(&entity.Product{
			ID:            productID,
			Name:          "Espresso Beans",
			StockQuantity: 2,
		}, nil)

	_, err := service.DecrementForOrder(ctx, mockFactory, productID, uuid.New(), 5)

	var stockErr *domainerrors.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 5, stockErr.Requested)
	assert.Equal(t, 2, stockErr.Remaining)
}

func TestInventoryService_DecrementForOrder_BackorderGoesNegative(t *testing.T) {
	mockProductRepo, mockMovementRepo, _, mockFactory, _, service := newInventoryFixture(t)

	ctx := context.Background()
	productID := uuid.New()

	mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
	mockFactory.EXPECT().NewInventoryMovementRepository().Return(mockMovementRepo)

	mockProductRepo.EXPECT().
		FindByIDForUpdate(ctx, productID).
		Return(&entity.Product{
			ID:               productID,
			StockQuantity:    2,
			BackorderAllowed: true,
		}, nil)

	mockProductRepo.EXPECT().
		UpdateStockQuantity(ctx, productID, -3).
		Return(nil)

	mockMovementRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.InventoryMovement")).
		Return(nil)

	movement, err := service.DecrementForOrder(ctx, mockFactory, productID, uuid.New(), 5)
	require.NoError(t, err)
	assert.Equal(t, -3, movement.NewQuantity)
}

func TestInventoryService_LowStockAlertFiresOnCrossingOnly(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()
	orderID := uuid.New()

	t.Run("crossing the threshold appends an alert", func(t *testing.T) {
		mockProductRepo, mockMovementRepo, mockOutboxRepo, mockFactory, _, service := newInventoryFixture(t)

		mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
		mockFactory.EXPECT().NewInventoryMovementRepository().Return(mockMovementRepo)
		mockFactory.EXPECT().NewOutboxRepository().Return(mockOutboxRepo)

		mockProductRepo.EXPECT().
			FindByIDForUpdate(ctx, productID).
			Return(&entity.Product{
				ID:                productID,
				Name:              "Espresso Beans",
				StockQuantity:     8,
				InitialStock:      100,
				LowStockThreshold: 10,
			}, nil)
		mockProductRepo.EXPECT().
			UpdateStockQuantity(ctx, productID, 5).
			Return(nil)
		mockMovementRepo.EXPECT().
			Append(ctx, mock.AnythingOfType("*entity.InventoryMovement")).
			Return(nil)

		mockOutboxRepo.EXPECT().
			Append(ctx, mock.AnythingOfType("*entity.OutboxEvent")).
			Run(func(ctx context.Context, event *entity.OutboxEvent) {
				assert.Equal(t, constants.OutboxTopicStockAlert, event.Topic)
				assert.Equal(t, productID.String(), event.Key)
			}).
			Return(nil)

		_, err := service.DecrementForOrder(ctx, mockFactory, productID, orderID, 3)
		require.NoError(t, err)
	})

	t.Run("already below the threshold stays silent", func(t *testing.T) {
		mockProductRepo, mockMovementRepo, _, mockFactory, _, service := newInventoryFixture(t)

		mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
		mockFactory.EXPECT().NewInventoryMovementRepository().Return(mockMovementRepo)

		mockProductRepo.EXPECT().
			FindByIDForUpdate(ctx, productID).
			Return(&entity.Product{
				ID:                productID,
				StockQuantity:     5,
				InitialStock:      100,
				LowStockThreshold: 10,
			}, nil)
		mockProductRepo.EXPECT().
			UpdateStockQuantity(ctx, productID, 3).
			Return(nil)
		mockMovementRepo.EXPECT().
			Append(ctx, mock.AnythingOfType("*entity.InventoryMovement")).
			Return(nil)

		_, err := service.DecrementForOrder(ctx, mockFactory, productID, orderID, 2)
		require.NoError(t, err)
	})
}

func TestInventoryService_CreditReturn(t *testing.T) {
	mockProductRepo, mockMovementRepo, _, mockFactory, _, service := newInventoryFixture(t)

	ctx := context.Background()
	productID := uuid.New()
	orderID := uuid.New()

	mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
	mockFactory.EXPECT().NewInventoryMovementRepository().Return(mockMovementRepo)

	mockProductRepo.EXPECT().
		FindByIDForUpdate(ctx, productID).
		Return(&entity.Product{ID: productID, StockQuantity: 7}, nil)
	mockProductRepo.EXPECT().
		UpdateStockQuantity(ctx, productID, 10).
		Return(nil)

	mockMovementRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.InventoryMovement")).
		Run(func(ctx context.Context, movement *entity.InventoryMovement) {
			assert.Equal(t, 3, movement.QuantityChange)
			assert.Equal(t, entity.MovementReturn, movement.Type)
			assert.Equal(t, constants.ActorOrderCancel, movement.Actor)
		}).
		Return(nil)

	movement, err := service.CreditReturn(ctx, mockFactory, productID, orderID, 3)
	require.NoError(t, err)
	assert.Equal(t, 10, movement.NewQuantity)
}

func TestInventoryService_Adjust(t *testing.T) {
	mockProductRepo, mockMovementRepo, _, mockFactory, mockTxManager, service := newInventoryFixture(t)

	ctx := context.Background()
	productID := uuid.New()

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
	mockFactory.EXPECT().NewInventoryMovementRepository().Return(mockMovementRepo)

	mockProductRepo.EXPECT().
		FindByIDForUpdate(ctx, productID).
		Return(&entity.Product{ID: productID, StockQuantity: 20}, nil)
	mockProductRepo.EXPECT().
		UpdateStockQuantity(ctx, productID, 15).
		Return(nil)

	mockMovementRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.InventoryMovement")).
		Run(func(ctx context.Context, movement *entity.InventoryMovement) {
			assert.Equal(t, entity.MovementAdjustment, movement.Type)
			assert.Equal(t, "cycle-count-2026-08", movement.ReferenceID)
			assert.Equal(t, "ops@example.com", movement.Actor)
		}).
		Return(nil)

	movement, err := service.Adjust(ctx, productID, -5, "cycle-count-2026-08", "ops@example.com")
	require.NoError(t, err)
	assert.Equal(t, 15, movement.NewQuantity)
}

func TestInventoryService_Adjust_RejectsZeroDelta(t *testing.T) {
	_, _, _, _, _, service := newInventoryFixture(t)

	_, err := service.Adjust(context.Background(), uuid.New(), 0, "ref", "ops")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestInventoryService_VerifyLedger(t *testing.T) {
	mockProductRepo, mockMovementRepo, _, _, _, service := newInventoryFixture(t)

	ctx := context.Background()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, InitialStock: 100, StockQuantity: 95}, nil).
		Twice()

	mockMovementRepo.EXPECT().
		FindByProduct(ctx, productID).
		Return([]*entity.InventoryMovement{
			{QuantityChange: -3},
			{QuantityChange: -2},
		}, nil).
		Once()

	ok, err := service.VerifyLedger(ctx, productID)
	require.NoError(t, err)
	assert.True(t, ok)

	// A movement written without its stock update leaves the ledger drifted.
	mockMovementRepo.EXPECT().
		FindByProduct(ctx, productID).
		Return([]*entity.InventoryMovement{
			{QuantityChange: -3},
		}, nil).
		Once()

	ok, err = service.VerifyLedger(ctx, productID)
	require.NoError(t, err)
	assert.False(t, ok)
}
