package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusProcessing    OrderStatus = "processing"
	OrderStatusPaid          OrderStatus = "paid"
	OrderStatusPaymentFailed OrderStatus = "payment_failed"
	OrderStatusShipped       OrderStatus = "shipped"
	OrderStatusDelivered     OrderStatus = "delivered"
	OrderStatusDisputed      OrderStatus = "disputed"
	OrderStatusRefunded      OrderStatus = "refunded"
	OrderStatusCancelled     OrderStatus = "cancelled"
)

// PaymentStatus mirrors the last reconciled gateway outcome on the order.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusDisputed  PaymentStatus = "disputed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// validTransitions enumerates every allowed status edge. The payment
// reconciler and fulfillment actions both consult this table, so repeated or
// out-of-order gateway events are rejected here rather than case by case.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusProcessing: {OrderStatusPaid, OrderStatusPaymentFailed, OrderStatusCancelled},
	OrderStatusPaid:       {OrderStatusPaymentFailed, OrderStatusShipped, OrderStatusDisputed, OrderStatusRefunded},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDisputed:   {OrderStatusRefunded},
}

// CanTransitionTo reports whether moving from s to next is a valid status edge.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Order is the persisted result of a successful checkout. It is created once
// by the checkout orchestrator and afterwards mutated only by the payment
// reconciler (status and payment fields) and fulfillment actions (status and
// tracking number).
type Order struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	ShippingCost    decimal.Decimal `json:"shipping_cost"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Currency        string          `json:"currency"`
	ShippingName    string          `json:"shipping_name"`
	ShippingAddress string          `json:"shipping_address"`
	ShippingCity    string          `json:"shipping_city"`
	ShippingState   string          `json:"shipping_state"`
	ShippingZip     string          `json:"shipping_zip"`
	ShippingCountry string          `json:"shipping_country"`
	Status          OrderStatus     `json:"status"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	PaymentIntentID string          `json:"payment_intent_id"`
	TrackingNumber  string          `json:"tracking_number,omitempty"`
	Items           []*OrderItem    `json:"items,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderItem is one order line. PriceAtPurchase is frozen from the catalog
// price at checkout time and never recomputed, regardless of later catalog
// price changes.
type OrderItem struct {
	ID              uuid.UUID       `json:"id"`
	OrderID         uuid.UUID       `json:"order_id"`
	ProductID       uuid.UUID       `json:"product_id"`
	Quantity        int             `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase"`
	CreatedAt       time.Time       `json:"created_at"`
}
