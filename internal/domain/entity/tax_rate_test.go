package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaxRate_ValidAt(t *testing.T) {
	now := time.Now()
	endsAt := now.Add(time.Hour)

	rate := TaxRate{
		IsActive: true,
		StartsAt: now.Add(-time.Hour),
		EndsAt:   &endsAt,
	}

	assert.True(t, rate.ValidAt(now))
	assert.True(t, rate.ValidAt(rate.StartsAt))
	assert.True(t, rate.ValidAt(endsAt), "end of window is inclusive")
	assert.False(t, rate.ValidAt(rate.StartsAt.Add(-time.Second)))
	assert.False(t, rate.ValidAt(endsAt.Add(time.Second)))

	rate.EndsAt = nil
	assert.True(t, rate.ValidAt(now.Add(24*365*time.Hour)), "open-ended rates never expire")

	rate.IsActive = false
	assert.False(t, rate.ValidAt(now))
}
