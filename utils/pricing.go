package utils

import (
	"math"
)

// Round2 rounds a monetary amount to 2 decimal places
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// DiscountedPrice returns the price after applying a percentage discount,
// rounded to 2 decimals. Negative or non-finite prices are coerced to 0,
// and the discount is clamped into [0, 100] so a bad deal record can never
// produce a negative price at booking time.
func DiscountedPrice(original float64, discountPercent float64) float64 {
	if original < 0 || math.IsNaN(original) || math.IsInf(original, 0) {
		original = 0
	}
	if discountPercent < 0 || math.IsNaN(discountPercent) {
		discountPercent = 0
	}
	if discountPercent > 100 {
		discountPercent = 100
	}
	if discountPercent == 0 {
		return Round2(original)
	}
	discount := (original * discountPercent) / 100.0
	return Round2(original - discount)
}

// AmountInCentavos converts a peso amount into the smallest currency unit.
// Rounding avoids float truncation turning 8.20 into 819 centavos.
func AmountInCentavos(amount float64) int {
	return int(math.Round(amount * 100))
}

// DiscountAmount returns how much the discount takes off the original price
func DiscountAmount(original float64, discountPercent float64) float64 {
	return Round2(original - DiscountedPrice(original, discountPercent))
}
