package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the persistence operations for orders and their items.
type OrderRepository interface {
	// Create persists the order header and all of its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUpdate retrieves an order, without items, under an exclusive
	// row lock so a status change cannot race the payment reconciler.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByUser retrieves a user's orders, newest first, without items.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindByPaymentIntentIDForUpdate retrieves the order referenced by a gateway
	// payment intent under an exclusive row lock, so concurrent webhook
	// deliveries for the same order serialize.
	FindByPaymentIntentIDForUpdate(ctx context.Context, paymentIntentID string) (*entity.Order, error)

	// UpdatePaymentIntentID stores the gateway reference on the order.
	UpdatePaymentIntentID(ctx context.Context, id uuid.UUID, paymentIntentID string) error

	// UpdateStatus writes a new order status and payment status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, paymentStatus entity.PaymentStatus) error

	// UpdateFulfillment writes a fulfillment status change with its tracking number.
	UpdateFulfillment(ctx context.Context, id uuid.UUID, status entity.OrderStatus, trackingNumber string) error
}
