package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventoryMovement_Consistent(t *testing.T) {
	movement := InventoryMovement{
		QuantityChange:   -3,
		PreviousQuantity: 10,
		NewQuantity:      7,
	}
	assert.True(t, movement.Consistent())

	movement.NewQuantity = 6
	assert.False(t, movement.Consistent())
}

func TestReplayStock(t *testing.T) {
	movements := []*InventoryMovement{
		{QuantityChange: -3},
		{QuantityChange: -2},
		{QuantityChange: 5},
		{QuantityChange: -1},
	}

	assert.Equal(t, 99, ReplayStock(100, movements))
	assert.Equal(t, 42, ReplayStock(42, nil), "no movements leaves the initial stock")
}

func TestReplayStock_BackorderGoesNegative(t *testing.T) {
	movements := []*InventoryMovement{
		{QuantityChange: -3},
		{QuantityChange: -2},
	}

	assert.Equal(t, -1, ReplayStock(4, movements))
}
