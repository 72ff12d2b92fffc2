package postgres

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderMapper_PaymentIntentID(t *testing.T) {
	order := &entity.Order{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Subtotal:    decimal.NewFromInt(45),
		TotalAmount: decimal.RequireFromString("54.70"),
		Currency:    "USD",
		Status:      entity.OrderStatusProcessing,
	}

	// Freshly created orders carry no intent yet. The column must be NULL,
	// not an empty string, or the unique index would admit only one such row
	// at a time.
	orderM := fromOrderDomain(order)
	assert.Nil(t, orderM.PaymentIntentID)

	back := toOrderDomain(orderM)
	assert.Empty(t, back.PaymentIntentID)

	order.PaymentIntentID = "pi_123"
	orderM = fromOrderDomain(order)
	require.NotNil(t, orderM.PaymentIntentID)
	assert.Equal(t, "pi_123", *orderM.PaymentIntentID)

	back = toOrderDomain(orderM)
	assert.Equal(t, "pi_123", back.PaymentIntentID)
}
