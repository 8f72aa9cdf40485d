package kernel

import (
	"fmt"
	"math"

	"agritrade/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount.
// Amounts are stored as integer cents so that line totals and order totals
// stay exact under multiplication and summation.
//
// The zero value of Money is a valid zero amount, which keeps unit prices of
// free samples and unpriced drafts representable without a nil sentinel.
//
// Example:
//
//	price, err := kernel.NewMoneyFromFloat(8.50)
//	if err != nil {
//	    // handle error
//	}
//	total, err := price.MulQuantity(500)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(total) // 4250.00
type Money struct {
	cents int64
}

// NewMoney creates a Money value from integer cents.
// Returns an error for negative amounts.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("money", cents, 0, math.MaxInt64)
	}
	return Money{cents: cents}, nil
}

// NewMoneyFromFloat creates a Money value from a decimal amount in major
// units, rounding to the nearest cent. Returns an error for negative or
// non-finite amounts.
func NewMoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidError("money amount is not finite")
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("money", amount, 0, math.MaxInt64)
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float returns the amount in major units as a float64.
// Intended for wire representations, not for arithmetic.
func (m Money) Float() float64 {
	return float64(m.cents) / 100
}

// MulQuantity returns the amount multiplied by a quantity of units.
// Quantities are caller-supplied, so the product is range-checked:
// a negative quantity or a total past the int64 cent ceiling is rejected.
func (m Money) MulQuantity(quantity int64) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, math.MaxInt64)
	}
	if m.cents != 0 && quantity > math.MaxInt64/m.cents {
		return Money{}, errs.NewValueIsOutOfRangeError("money", quantity, 0, math.MaxInt64/m.cents)
	}
	return Money{cents: m.cents * quantity}, nil
}

// Add returns the sum of two amounts, rejecting sums past the int64
// cent ceiling.
func (m Money) Add(other Money) (Money, error) {
	if m.cents > math.MaxInt64-other.cents {
		return Money{}, errs.NewValueIsOutOfRangeError("money", other.cents, 0, math.MaxInt64-m.cents)
	}
	return Money{cents: m.cents + other.cents}, nil
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount with two decimal places, e.g. "4250.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
