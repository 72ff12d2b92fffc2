package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddItem_CreatesNewLine(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockCartRepo, mockProductRepo, mockRepo.NewMockTransactionManager(t), discardLogger())

	ctx := context.Background()
	owner := entity.UserOwner(uuid.New())
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, IsActive: true}, nil)

	mockCartRepo.EXPECT().
		FindItem(ctx, owner, productID).
		Return(nil, repository.ErrCartItemNotFound)

	mockCartRepo.EXPECT().
		CreateItem(ctx, mock.AnythingOfType("*entity.CartItem")).
		Run(func(ctx context.Context, item *entity.CartItem) {
			assert.Equal(t, owner, item.Owner)
			assert.Equal(t, productID, item.ProductID)
			assert.Equal(t, 2, item.Quantity)
		}).
		Return(nil)

	err := service.AddItem(ctx, owner, productID, 2)
	require.NoError(t, err)
}

func TestCartService_AddItem_SumsExistingLine(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockCartRepo, mockProductRepo, mockRepo.NewMockTransactionManager(t), discardLogger())

	ctx := context.Background()
	owner := entity.UserOwner(uuid.New())
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, IsActive: true}, nil)

	mockCartRepo.EXPECT().
		FindItem(ctx, owner, productID).
		Return(&entity.CartItem{Owner: owner, ProductID: productID, Quantity: 2}, nil)

	mockCartRepo.EXPECT().
		UpdateQuantity(ctx, owner, productID, 5).
		Return(nil)

	err := service.AddItem(ctx, owner, productID, 3)
	require.NoError(t, err)
}

func TestCartService_AddItem_RejectsInactiveProduct(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockCartRepo, mockProductRepo, mockRepo.NewMockTransactionManager(t), discardLogger())

	ctx := context.Background()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, IsActive: false}, nil)

	err := service.AddItem(ctx, entity.UserOwner(uuid.New()), productID, 1)
	assert.ErrorIs(t, err, domainerrors.ErrProductInactive)
}

func TestCartService_AddItem_RejectsInvalidQuantity(t *testing.T) {
	service := NewCartService(
		mockRepo.NewMockCartRepository(t),
		mockRepo.NewMockProductRepository(t),
		mockRepo.NewMockTransactionManager(t),
		discardLogger(),
	)

	err := service.AddItem(context.Background(), entity.UserOwner(uuid.New()), uuid.New(), 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestCartService_UpdateItemQuantity_ZeroRemovesLine(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	service := NewCartService(mockCartRepo, mockRepo.NewMockProductRepository(t), mockRepo.NewMockTransactionManager(t), discardLogger())

	ctx := context.Background()
	owner := entity.UserOwner(uuid.New())
	productID := uuid.New()

	mockCartRepo.EXPECT().
		DeleteItem(ctx, owner, productID).
		Return(nil)

	err := service.UpdateItemQuantity(ctx, owner, productID, 0)
	require.NoError(t, err)
}

func TestCartService_GetCart_DropsStaleLinesAndFlagsStock(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockCartRepo, mockProductRepo, mockRepo.NewMockTransactionManager(t), discardLogger())

	ctx := context.Background()
	owner := entity.UserOwner(uuid.New())

	healthyID := uuid.New()
	scarceID := uuid.New()
	deletedID := uuid.New()

	mockCartRepo.EXPECT().
		FindItemsByOwner(ctx, owner).
		Return([]*entity.CartItem{
			{Owner: owner, ProductID: healthyID, Quantity: 2},
			{Owner: owner, ProductID: scarceID, Quantity: 5},
			{Owner: owner, ProductID: deletedID, Quantity: 1},
		}, nil)

	mockProductRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{healthyID, scarceID, deletedID}).
		Return([]*entity.Product{
			{ID: healthyID, IsActive: true, Price: decimal.NewFromInt(10), StockQuantity: 100},
			{ID: scarceID, IsActive: true, Price: decimal.NewFromInt(20), StockQuantity: 3},
		}, nil)

	// The vanished product's row is removed from storage, not just hidden.
	mockCartRepo.EXPECT().
		DeleteItem(ctx, owner, deletedID).
		Return(nil)

	view, err := service.GetCart(ctx, owner)
	require.NoError(t, err)
	require.Len(t, view.Lines, 2)

	assert.False(t, view.Lines[0].StockWarning)
	assert.True(t, view.Lines[1].StockWarning, "quantity above stock carries a warning but stays")
	assert.True(t, view.Subtotal.Equal(decimal.NewFromInt(120)), "subtotal = %s", view.Subtotal)
}

func TestCartService_MergeGuestCart(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := NewCartService(mockCartRepo, mockRepo.NewMockProductRepository(t), mockTxManager, discardLogger())

	ctx := context.Background()
	userID := uuid.New()
	userOwner := entity.UserOwner(userID)
	sessionOwner, err := entity.SessionOwner("guest-session")
	require.NoError(t, err)

	sharedID := uuid.New()
	guestOnlyID := uuid.New()

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)

	mockCartRepo.EXPECT().
		FindItemsByOwner(ctx, sessionOwner).
		Return([]*entity.CartItem{
			{Owner: sessionOwner, ProductID: sharedID, Quantity: 2},
			{Owner: sessionOwner, ProductID: guestOnlyID, Quantity: 1},
		}, nil)

	// Shared product: quantities are summed.
	mockCartRepo.EXPECT().
		FindItem(ctx, userOwner, sharedID).
		Return(&entity.CartItem{Owner: userOwner, ProductID: sharedID, Quantity: 1}, nil)
	mockCartRepo.EXPECT().
		UpdateQuantity(ctx, userOwner, sharedID, 3).
		Return(nil)

	// Guest-only product: moved over as a new line.
	mockCartRepo.EXPECT().
		FindItem(ctx, userOwner, guestOnlyID).
		Return(nil, repository.ErrCartItemNotFound)
	mockCartRepo.EXPECT().
		CreateItem(ctx, mock.AnythingOfType("*entity.CartItem")).
		Run(func(ctx context.Context, item *entity.CartItem) {
			assert.Equal(t, userOwner, item.Owner)
			assert.Equal(t, guestOnlyID, item.ProductID)
			assert.Equal(t, 1, item.Quantity)
		}).
		Return(nil)

	mockCartRepo.EXPECT().
		ClearOwner(ctx, sessionOwner).
		Return(nil)

	err = service.MergeGuestCart(ctx, sessionOwner, userID)
	require.NoError(t, err)
}

func TestCartService_MergeGuestCart_FailedLineIsSkippedAndCartStillClears(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := NewCartService(mockCartRepo, mockRepo.NewMockProductRepository(t), mockTxManager, discardLogger())

	ctx := context.Background()
	userID := uuid.New()
	userOwner := entity.UserOwner(userID)
	sessionOwner, err := entity.SessionOwner("guest-session")
	require.NoError(t, err)

	brokenID := uuid.New()
	healthyID := uuid.New()

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)

	mockCartRepo.EXPECT().
		FindItemsByOwner(ctx, sessionOwner).
		Return([]*entity.CartItem{
			{Owner: sessionOwner, ProductID: brokenID, Quantity: 2},
			{Owner: sessionOwner, ProductID: healthyID, Quantity: 1},
		}, nil)

	// The first line fails to merge. It is logged and skipped; the remaining
	// lines still merge and the guest cart is still cleared.
	mockCartRepo.EXPECT().
		FindItem(ctx, userOwner, brokenID).
		Return(nil, repository.ErrCartItemNotFound)
	mockCartRepo.EXPECT().
		CreateItem(ctx, mock.MatchedBy(func(item *entity.CartItem) bool {
			return item.ProductID == brokenID
		})).
		Return(domainerrors.ErrInternalError)

	mockCartRepo.EXPECT().
		FindItem(ctx, userOwner, healthyID).
		Return(nil, repository.ErrCartItemNotFound)
	mockCartRepo.EXPECT().
		CreateItem(ctx, mock.MatchedBy(func(item *entity.CartItem) bool {
			return item.ProductID == healthyID
		})).
		Return(nil)

	mockCartRepo.EXPECT().
		ClearOwner(ctx, sessionOwner).
		Return(nil)

	err = service.MergeGuestCart(ctx, sessionOwner, userID)
	require.NoError(t, err)
}

func TestCartService_MergeGuestCart_EmptyGuestCartStillClears(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := NewCartService(mockCartRepo, mockRepo.NewMockProductRepository(t), mockTxManager, discardLogger())

	ctx := context.Background()
	sessionOwner, err := entity.SessionOwner("guest-session")
	require.NoError(t, err)

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)

	mockCartRepo.EXPECT().
		FindItemsByOwner(ctx, sessionOwner).
		Return(nil, nil)

	mockCartRepo.EXPECT().
		ClearOwner(ctx, sessionOwner).
		Return(nil)

	err = service.MergeGuestCart(ctx, sessionOwner, uuid.New())
	require.NoError(t, err)
}
