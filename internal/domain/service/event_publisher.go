package service

import (
	"context"
)

// StockAlertEvent notifies the external notification collaborator that a
// product has fallen below its low-stock threshold.
type StockAlertEvent struct {
	EventID     string `json:"event_id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Remaining   int    `json:"remaining"`
	Threshold   int    `json:"threshold"`
}

// PaymentOutcomeEvent notifies the external mail collaborator of a reconciled
// payment result. Email composition and delivery live downstream.
type PaymentOutcomeEvent struct {
	EventID string `json:"event_id"`
	OrderID string `json:"order_id"`
	UserID  string `json:"user_id"`
	Status  string `json:"status"`
	Total   string `json:"total"`
}

// EventPublisher defines the interface for publishing notification events to a
// message queue. Publishing is fire-and-forget from the domain's point of
// view: failures are logged and retried by the outbox dispatcher, never
// surfaced into the transaction that produced the event.
type EventPublisher interface {
	// PublishStockAlert publishes a low-stock alert for async processing.
	PublishStockAlert(ctx context.Context, event *StockAlertEvent) error

	// PublishPaymentOutcome publishes a payment outcome for async processing.
	PublishPaymentOutcome(ctx context.Context, event *PaymentOutcomeEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
