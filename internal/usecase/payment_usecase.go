package usecase

import (
	"context"

	"storefront/internal/domain/service"
)

// PaymentUsecase reconciles asynchronous gateway outcomes onto orders.
type PaymentUsecase interface {
	// HandleWebhook verifies the raw webhook payload and applies the event.
	// Processing is idempotent: replayed or out-of-order deliveries that do
	// not correspond to a valid status transition are acknowledged without
	// effect so the gateway stops retrying.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error

	// ApplyGatewayEvent applies an already verified event. Exposed separately
	// for requeue tooling and tests.
	ApplyGatewayEvent(ctx context.Context, event *service.GatewayEvent) error
}
