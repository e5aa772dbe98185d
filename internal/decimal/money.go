package decimal

import (
	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// One is decimal one
var One = decimal.NewFromInt(1)

var hundred = decimal.NewFromInt(100)

// FromFloat creates a decimal from a float without rounding
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// FromString parses a decimal from a string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// MustFromString parses a decimal from a string, panics on error
func MustFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Round2 rounds to 2 decimal places (SAR monetary amounts)
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Round4 rounds to 4 decimal places (unit prices and quantities)
func Round4(d decimal.Decimal) decimal.Decimal {
	return d.Round(4)
}

// TaxOf computes tax on an amount at a percentage rate: round2(amount * rate/100)
func TaxOf(amount, ratePercent decimal.Decimal) decimal.Decimal {
	if ratePercent.IsZero() {
		return Zero
	}
	return amount.Mul(ratePercent).Div(hundred).Round(2)
}

// NetOfTax strips tax from a tax-inclusive amount: amount / (1 + rate/100).
// The result is not rounded; callers round at their own precision.
func NetOfTax(amount, ratePercent decimal.Decimal) decimal.Decimal {
	if ratePercent.IsZero() {
		return amount
	}
	return amount.Div(One.Add(ratePercent.Div(hundred)))
}

// Sum sums a slice of decimals
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// IsNonNegative returns true if decimal is >= zero
func IsNonNegative(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(Zero)
}
