// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider types for the notification event publisher.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Outbox topics. Events are appended inside the transaction that produced
// them and published by the dispatcher only after that transaction commits.
const (
	OutboxTopicStockAlert     = "inventory.stock_alert"
	OutboxTopicPaymentOutcome = "payment.outcome"
)

// Actor names recorded on inventory movements that are not triggered by a
// specific human operator.
const (
	ActorCheckout    = "checkout"
	ActorReconciler  = "payment-reconciler"
	ActorOrderCancel = "order-cancel"
)
