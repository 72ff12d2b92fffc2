package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase covers post-checkout order access and fulfillment actions.
type OrderUsecase interface {
	// GetOrder retrieves an order with its items. Non-admin callers may only
	// read their own orders.
	GetOrder(ctx context.Context, orderID, requesterID uuid.UUID, isAdmin bool) (*entity.Order, error)

	// ListUserOrders retrieves a user's orders, newest first.
	ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// CancelOrder cancels an order that has not been paid yet and restores
	// its stock through the ledger.
	CancelOrder(ctx context.Context, orderID, requesterID uuid.UUID, isAdmin bool) (*entity.Order, error)

	// MarkShipped moves a paid order to shipped with a tracking number.
	MarkShipped(ctx context.Context, orderID uuid.UUID, trackingNumber string) (*entity.Order, error)

	// MarkDelivered moves a shipped order to delivered.
	MarkDelivered(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// PickupQR renders the PNG QR code a customer presents at in-store pickup.
	PickupQR(ctx context.Context, orderID, requesterID uuid.UUID, isAdmin bool) ([]byte, error)
}
