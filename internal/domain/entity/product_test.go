package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_CanFulfill(t *testing.T) {
	product := Product{StockQuantity: 5}

	assert.True(t, product.CanFulfill(5), "exact stock is fulfillable")
	assert.False(t, product.CanFulfill(6))

	product.BackorderAllowed = true
	assert.True(t, product.CanFulfill(6), "backorder ignores the stock level")
}

func TestProduct_LowOnStock(t *testing.T) {
	product := Product{
		LowStockThreshold: 10,
		InitialStock:      100,
	}

	assert.False(t, product.LowOnStock(11, 20), "above the threshold is never low")
	assert.True(t, product.LowOnStock(10, 20), "10% of initial stock is within the 20% alert band")
	assert.True(t, product.LowOnStock(0, 20))

	// Below the threshold but still a healthy share of a small initial stock.
	small := Product{
		LowStockThreshold: 50,
		InitialStock:      100,
	}
	assert.False(t, small.LowOnStock(30, 20), "30% of initial stock is above the 20% alert band")

	// Without a seeded baseline the threshold alone decides.
	unseeded := Product{LowStockThreshold: 10}
	assert.True(t, unseeded.LowOnStock(5, 20))
}
