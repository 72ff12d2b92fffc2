package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "8.25%", FormatRate(decimal.RequireFromString("8.25")))
	assert.Equal(t, "0%", FormatRate(decimal.Zero))
	assert.Equal(t, "10%", FormatRate(decimal.NewFromInt(10)))
}
