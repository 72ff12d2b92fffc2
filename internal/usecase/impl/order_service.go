package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type orderService struct {
	orderRepo        repository.OrderRepository
	txManager        repository.TransactionManager
	inventoryUsecase usecase.InventoryUsecase
	qrcodeService    service.QRCodeService
	logger           *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(
	orderRepo repository.OrderRepository,
	txManager repository.TransactionManager,
	inventoryUsecase usecase.InventoryUsecase,
	qrcodeService service.QRCodeService,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo:        orderRepo,
		txManager:        txManager,
		inventoryUsecase: inventoryUsecase,
		qrcodeService:    qrcodeService,
		logger:           logger,
	}
}

// GetOrder retrieves an order with its items, enforcing ownership.
func (s *orderService) GetOrder(ctx context.Context, orderID, requesterID uuid.UUID, isAdmin bool) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	if !isAdmin && order.UserID != requesterID {
		return nil, domainerrors.ErrForbidden
	}

	return order, nil
}

// ListUserOrders retrieves a user's orders, newest first.
func (s *orderService) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// CancelOrder cancels an unpaid order and restores its stock. The credit
// movements and the status change commit together.
func (s *orderService) CancelOrder(ctx context.Context, orderID, requesterID uuid.UUID, isAdmin bool) (*entity.Order, error) {
	// Items are loaded outside the lock; the order line set never changes
	// after checkout.
	order, err := s.GetOrder(ctx, orderID, requesterID, isAdmin)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		orderRepo := repos.NewOrderRepository()

		locked, err := orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return errors.Wrap(err, "failed to lock order")
		}

		if !locked.Status.CanTransitionTo(entity.OrderStatusCancelled) {
			return domainerrors.ErrOrderStateConflict
		}

		if err := orderRepo.UpdateStatus(ctx, orderID, entity.OrderStatusCancelled, locked.PaymentStatus); err != nil {
			return errors.Wrap(err, "failed to cancel order")
		}

		for _, item := range order.Items {
			if _, err := s.inventoryUsecase.CreditReturn(ctx, repos, item.ProductID, orderID, item.Quantity); err != nil {
				return err
			}
		}

		order.Status = entity.OrderStatusCancelled
		order.PaymentStatus = locked.PaymentStatus

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "order cancelled",
		slog.String("order_id", orderID.String()),
		slog.String("requester_id", requesterID.String()))

	return order, nil
}

// MarkShipped moves a paid order to shipped with a tracking number.
func (s *orderService) MarkShipped(ctx context.Context, orderID uuid.UUID, trackingNumber string) (*entity.Order, error) {
	return s.transitionFulfillment(ctx, orderID, entity.OrderStatusShipped, trackingNumber)
}

// MarkDelivered moves a shipped order to delivered.
func (s *orderService) MarkDelivered(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	return s.transitionFulfillment(ctx, orderID, entity.OrderStatusDelivered, "")
}

// transitionFulfillment applies a fulfillment status change under the order's
// row lock.
func (s *orderService) transitionFulfillment(ctx context.Context, orderID uuid.UUID, target entity.OrderStatus, trackingNumber string) (*entity.Order, error) {
	var order *entity.Order

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		orderRepo := repos.NewOrderRepository()

		locked, err := orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to lock order")
		}

		if !locked.Status.CanTransitionTo(target) {
			return domainerrors.ErrOrderStateConflict
		}

		if trackingNumber == "" {
			trackingNumber = locked.TrackingNumber
		}

		if err := orderRepo.UpdateFulfillment(ctx, orderID, target, trackingNumber); err != nil {
			return errors.Wrap(err, "failed to update fulfillment")
		}

		locked.Status = target
		locked.TrackingNumber = trackingNumber
		order = locked

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// PickupQR renders the PNG QR code a customer presents at in-store pickup.
// Only paid orders are eligible.
func (s *orderService) PickupQR(ctx context.Context, orderID, requesterID uuid.UUID, isAdmin bool) ([]byte, error) {
	order, err := s.GetOrder(ctx, orderID, requesterID, isAdmin)
	if err != nil {
		return nil, err
	}

	if order.Status != entity.OrderStatusPaid {
		return nil, domainerrors.ErrOrderStateConflict
	}

	png, err := s.qrcodeService.GeneratePickupQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render pickup QR code")
	}

	return png, nil
}
