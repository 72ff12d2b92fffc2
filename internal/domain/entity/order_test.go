package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{name: "processing to paid", from: OrderStatusProcessing, to: OrderStatusPaid, want: true},
		{name: "processing to payment failed", from: OrderStatusProcessing, to: OrderStatusPaymentFailed, want: true},
		{name: "processing to cancelled", from: OrderStatusProcessing, to: OrderStatusCancelled, want: true},
		{name: "processing to shipped skips payment", from: OrderStatusProcessing, to: OrderStatusShipped, want: false},
		{name: "paid to shipped", from: OrderStatusPaid, to: OrderStatusShipped, want: true},
		{name: "paid to disputed", from: OrderStatusPaid, to: OrderStatusDisputed, want: true},
		{name: "paid to refunded", from: OrderStatusPaid, to: OrderStatusRefunded, want: true},
		{name: "paid to cancelled", from: OrderStatusPaid, to: OrderStatusCancelled, want: false},
		{name: "replayed success has no edge", from: OrderStatusPaid, to: OrderStatusPaid, want: false},
		{name: "shipped to delivered", from: OrderStatusShipped, to: OrderStatusDelivered, want: true},
		{name: "shipped back to paid", from: OrderStatusShipped, to: OrderStatusPaid, want: false},
		{name: "disputed to refunded", from: OrderStatusDisputed, to: OrderStatusRefunded, want: true},
		{name: "delivered is terminal", from: OrderStatusDelivered, to: OrderStatusRefunded, want: false},
		{name: "cancelled is terminal", from: OrderStatusCancelled, to: OrderStatusPaid, want: false},
		{name: "refunded is terminal", from: OrderStatusRefunded, to: OrderStatusPaid, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_StaleFailureAfterSuccess(t *testing.T) {
	// A late payment_failed delivery arriving after the order already moved on
	// must be rejected once the order is past the paid state.
	assert.True(t, OrderStatusPaid.CanTransitionTo(OrderStatusPaymentFailed))
	assert.False(t, OrderStatusShipped.CanTransitionTo(OrderStatusPaymentFailed))
	assert.False(t, OrderStatusDelivered.CanTransitionTo(OrderStatusPaymentFailed))
}
