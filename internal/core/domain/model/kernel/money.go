package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Money is a value object representing a monetary amount in whole cents.
// It is used for unit-price snapshots and order totals, where floating
// point rounding would be unacceptable.
//
// The zero value is a valid amount of 0.00; negative amounts are invalid
// and rejected by NewMoney.
type Money struct {
	cents int64
}

// NewMoney creates a Money value from a non-negative amount of cents.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount in whole cents.
func (m Money) Cents() int64 {
	return m.cents
}

// MulQuantity multiplies the amount by an item quantity.
// Used to compute line subtotals from a unit price.
func (m Money) MulQuantity(quantity int) Money {
	return Money{cents: m.cents * int64(quantity)}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount with two decimal places, e.g. "35.00".
// Implements fmt.Stringer.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
