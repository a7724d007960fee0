package decimal

import (
	"math"

	"github.com/shopspring/decimal"
)

// Money represents a currency amount. Engine arithmetic stays in float64; Money is used where
// values are rounded or rendered.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64. NaN and infinities become zero.
func NewMoney(value float64) Money {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Zero()
	}
	return Money{decimal.NewFromFloat(value)}
}

// Round rounds the amount to cents, half away from zero.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// RoundUnits rounds the amount to whole currency units, half away from zero.
func (m Money) RoundUnits() Money {
	return Money{m.Decimal.Round(0)}
}

// Float64 returns the nearest float64.
func (m Money) Float64() float64 {
	f, _ := m.Decimal.Float64()
	return f
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// RoundUnits rounds a float64 to whole currency units.
func RoundUnits(v float64) float64 {
	return NewMoney(v).RoundUnits().Float64()
}

// String returns the amount with two decimals.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format prefixes the amount with a dollar sign.
func (m Money) Format() string {
	if m.IsNegative() {
		return "-$" + m.Decimal.Neg().StringFixed(2)
	}
	return "$" + m.String()
}
