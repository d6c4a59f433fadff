package kernel

import (
	"fmt"

	"tableside/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount in cents.
// Keeping amounts in integer cents avoids floating-point rounding when menu
// prices are multiplied by quantities and summed into order totals.
//
// The zero value (0 cents) is a valid amount; negative amounts are not.
//
// Example usage:
//
//	price, err := kernel.NewMoney(1250) // 12.50
//	if err != nil {
//	    // handle error
//	}
//	line := price.MultiplyBy(3)
//	total := total.Add(line)
type Money struct {
	cents int64
}

// NewMoney creates a Money value from an amount in cents.
// Returns an error if the amount is negative.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount is invalid",
			fmt.Errorf("%d is less than 0", cents),
		)
	}
	return Money{cents: cents}, nil
}

// Zero returns the zero monetary amount.
func Zero() Money {
	return Money{}
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MultiplyBy returns the amount multiplied by a non-negative quantity.
// A negative quantity clamps to zero; quantity validation belongs to the
// order domain, not the money value object.
func (m Money) MultiplyBy(quantity int) Money {
	if quantity <= 0 {
		return Money{}
	}
	return Money{cents: m.cents * int64(quantity)}
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}
