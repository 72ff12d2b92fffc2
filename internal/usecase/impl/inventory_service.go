package impl

import (
	"context"
	"encoding/json"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

const defaultLowStockAlertPercent = 5.0

type inventoryService struct {
	productRepo  repository.ProductRepository
	movementRepo repository.InventoryMovementRepository
	txManager    repository.TransactionManager
	alertPercent float64
}

// NewInventoryService creates a new inventory ledger service instance
func NewInventoryService(
	productRepo repository.ProductRepository,
	movementRepo repository.InventoryMovementRepository,
	txManager repository.TransactionManager,
	cfg *config.Config,
) usecase.InventoryUsecase {
	alertPercent := defaultLowStockAlertPercent
	if cfg.Inventory != nil && cfg.Inventory.LowStockAlertPercent > 0 {
		alertPercent = cfg.Inventory.LowStockAlertPercent
	}

	return &inventoryService{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		txManager:    txManager,
		alertPercent: alertPercent,
	}
}

// CheckAvailability answers the non-mutating stock question without locking
// the row. Remaining never goes below zero even for backordered products.
func (s *inventoryService) CheckAvailability(ctx context.Context, productID uuid.UUID, quantity int) (*usecase.Availability, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product for availability check")
	}

	remaining := product.StockQuantity
	if remaining < 0 {
		remaining = 0
	}

	return &usecase.Availability{
		ProductID: productID,
		Available: product.CanFulfill(quantity),
		Remaining: remaining,
	}, nil
}

// DecrementForOrder decrements stock for one order line inside the caller's
// transaction.
func (s *inventoryService) DecrementForOrder(ctx context.Context, repos repository.RepositoryFactory, productID, orderID uuid.UUID, quantity int) (*entity.InventoryMovement, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	return s.applyDelta(ctx, repos, productID, -quantity, entity.MovementOrder, orderID.String(), constants.ActorCheckout)
}

// CreditReturn restores stock for a returned or cancelled order line inside
// the caller's transaction.
func (s *inventoryService) CreditReturn(ctx context.Context, repos repository.RepositoryFactory, productID, orderID uuid.UUID, quantity int) (*entity.InventoryMovement, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	return s.applyDelta(ctx, repos, productID, quantity, entity.MovementReturn, orderID.String(), constants.ActorOrderCancel)
}

// Adjust applies a manual operator correction as its own transaction.
func (s *inventoryService) Adjust(ctx context.Context, productID uuid.UUID, delta int, reference, actor string) (*entity.InventoryMovement, error) {
	if delta == 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	var movement *entity.InventoryMovement

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var txErr error
		movement, txErr = s.applyDelta(ctx, repos, productID, delta, entity.MovementAdjustment, reference, actor)

		return txErr
	})
	if err != nil {
		return nil, err
	}

	return movement, nil
}

// applyDelta is the single write path of the ledger: lock the product row,
// check the backorder policy, write the new stock level and append the
// movement recording it. All four steps share the caller's transaction.
func (s *inventoryService) applyDelta(ctx context.Context, repos repository.RepositoryFactory, productID uuid.UUID, delta int, movementType entity.MovementType, reference, actor string) (*entity.InventoryMovement, error) {
	productRepo := repos.NewProductRepository()

	product, err := productRepo.FindByIDForUpdate(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to lock product for stock change")
	}

	newQuantity := product.StockQuantity + delta
	if newQuantity < 0 && !product.BackorderAllowed {
		remaining := product.StockQuantity
		if remaining < 0 {
			remaining = 0
		}

		return nil, domainerrors.NewInsufficientStockError(product.ID.String(), product.Name, -delta, remaining)
	}

	if err := productRepo.UpdateStockQuantity(ctx, productID, newQuantity); err != nil {
		return nil, errors.Wrap(err, "failed to write stock quantity")
	}

	movement := &entity.InventoryMovement{
		ProductID:        productID,
		QuantityChange:   delta,
		PreviousQuantity: product.StockQuantity,
		NewQuantity:      newQuantity,
		Type:             movementType,
		ReferenceID:      reference,
		Actor:            actor,
	}

	if err := repos.NewInventoryMovementRepository().Append(ctx, movement); err != nil {
		return nil, errors.Wrap(err, "failed to append movement")
	}

	// Raise the alert only on the decrement that crosses the threshold, not
	// on every sale below it.
	if delta < 0 &&
		product.LowOnStock(newQuantity, s.alertPercent) &&
		!product.LowOnStock(product.StockQuantity, s.alertPercent) {
		if err := s.appendLowStockAlert(ctx, repos, product, newQuantity); err != nil {
			return nil, err
		}
	}

	return movement, nil
}

// appendLowStockAlert records the alert in the outbox so it is published only
// if the surrounding transaction commits.
func (s *inventoryService) appendLowStockAlert(ctx context.Context, repos repository.RepositoryFactory, product *entity.Product, remaining int) error {
	alert := &service.StockAlertEvent{
		EventID:     uuid.New().String(),
		ProductID:   product.ID.String(),
		ProductName: product.Name,
		Remaining:   remaining,
		Threshold:   product.LowStockThreshold,
	}

	payload, err := json.Marshal(alert)
	if err != nil {
		return errors.Wrap(err, "failed to marshal stock alert")
	}

	event := &entity.OutboxEvent{
		EventID: alert.EventID,
		Topic:   constants.OutboxTopicStockAlert,
		Key:     product.ID.String(),
		Payload: payload,
	}

	return repos.NewOutboxRepository().Append(ctx, event)
}

// MovementHistory returns a product's full movement trail, oldest first.
func (s *inventoryService) MovementHistory(ctx context.Context, productID uuid.UUID) ([]*entity.InventoryMovement, error) {
	movements, err := s.movementRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load movement history")
	}

	return movements, nil
}

// VerifyLedger replays a product's movements over its initial stock and
// reports whether the result matches the current stock quantity.
func (s *inventoryService) VerifyLedger(ctx context.Context, productID uuid.UUID) (bool, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return false, domainerrors.ErrProductNotFound
		}

		return false, errors.Wrap(err, "failed to load product")
	}

	movements, err := s.movementRepo.FindByProduct(ctx, productID)
	if err != nil {
		return false, errors.Wrap(err, "failed to load movements")
	}

	return entity.ReplayStock(product.InitialStock, movements) == product.StockQuantity, nil
}
