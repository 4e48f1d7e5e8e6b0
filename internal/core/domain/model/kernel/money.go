package kernel

import (
	"fmt"
	"math"

	"fulfillment/internal/pkg/errs"
)

// Money is an amount in integer cents. Prices arrive from the external pricing
// collaborator already converted to cents, so no rounding happens in this service.
type Money int64

// Zero is the neutral amount.
const Zero Money = 0

// NewMoney returns cents as Money. Negative amounts are rejected.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Zero, errs.NewValueIsOutOfRangeError("money", cents, 0, int64(math.MaxInt64))
	}
	return Money(cents), nil
}

// Cents returns the raw amount.
func (m Money) Cents() int64 {
	return int64(m)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return m + other
}

// Multiply returns m * quantity, used for line totals.
func (m Money) Multiply(quantity int) Money {
	return m * Money(quantity)
}

// String renders the amount as dollars and cents, e.g. "12.50".
func (m Money) String() string {
	sign := ""
	cents := int64(m)
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
