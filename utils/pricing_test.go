package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountedPrice(t *testing.T) {
	tests := []struct {
		name     string
		original float64
		discount float64
		want     float64
	}{
		{"twenty percent off", 1000, 20, 800.00},
		{"no discount", 250, 0, 250.00},
		{"full discount", 99.99, 100, 0},
		{"rounds to two decimals", 100, 33.333, 66.67},
		{"fractional discount", 10, 2.5, 9.75},
		{"negative price coerced to zero", -500, 20, 0},
		{"negative discount treated as zero", 1000, -20, 1000.00},
		{"discount above hundred clamped", 1000, 150, 0},
		{"nan price coerced to zero", math.NaN(), 20, 0},
		{"infinite price coerced to zero", math.Inf(1), 20, 0},
		{"nan discount treated as zero", 1000, math.NaN(), 1000.00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DiscountedPrice(tt.original, tt.discount))
		})
	}
}

func TestDiscountAmount(t *testing.T) {
	assert.Equal(t, 200.00, DiscountAmount(1000, 20))
	assert.Equal(t, 0.00, DiscountAmount(1000, 0))
	assert.Equal(t, 1000.00, DiscountAmount(1000, 100))
}

func TestAmountInCentavos(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int
	}{
		{"whole pesos", 800, 80000},
		{"twenty centavos", 8.20, 820},
		{"ten centavos", 0.1, 10},
		{"repeating binary fraction", 1099.99, 109999},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AmountInCentavos(tt.amount))
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.56, Round2(10.556))
	assert.Equal(t, 10.55, Round2(10.554))
	assert.Equal(t, -10.56, Round2(-10.556))
	assert.Equal(t, 0.00, Round2(0))
}
