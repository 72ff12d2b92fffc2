// Package service defines interfaces for external collaborators of the domain.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GatewayEventType classifies asynchronous payment gateway callbacks.
type GatewayEventType string

const (
	GatewayEventSucceeded GatewayEventType = "payment_intent.succeeded"
	GatewayEventFailed    GatewayEventType = "payment_intent.payment_failed"
	GatewayEventDisputed  GatewayEventType = "charge.disputed"
	GatewayEventRefunded  GatewayEventType = "charge.refunded"
)

// PaymentIntentRequest asks the gateway to prepare a payment for an order.
type PaymentIntentRequest struct {
	OrderID  uuid.UUID
	Amount   decimal.Decimal
	Currency string
	Metadata map[string]string
}

// PaymentIntent is the gateway's handle for a prepared payment. ClientSecret
// is returned to the caller so the payment can be completed out-of-band.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// GatewayEvent is one verified webhook callback from the payment gateway.
type GatewayEvent struct {
	ID         string
	Type       GatewayEventType
	IntentID   string
	OccurredAt time.Time
}

// PaymentGateway is the outbound contract with the external payment provider.
// Only create-intent and webhook verification are modeled; the provider's wire
// protocol is otherwise out of scope.
type PaymentGateway interface {
	// CreateIntent registers a payment of the given amount and returns the
	// intent reference and client secret. Blocking; honors ctx cancellation.
	CreateIntent(ctx context.Context, req *PaymentIntentRequest) (*PaymentIntent, error)

	// VerifyWebhook checks the payload signature and parses the event. An
	// invalid signature must be rejected before any state mutation.
	VerifyWebhook(payload []byte, signature string) (*GatewayEvent, error)
}
