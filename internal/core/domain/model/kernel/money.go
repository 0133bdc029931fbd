package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not initialized
// through one of the constructor functions.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoneyFromString, NewMoneyFromDecimal, or ZeroMoney")

// maxMoneyFractionDigits is the scale of all monetary values. Amounts are
// stored and compared to the cent; no floating point is involved anywhere.
const maxMoneyFractionDigits = 2

// Money is a non-negative monetary value with exactly two fraction digits.
// It wraps shopspring/decimal so that totals stay exact to the cent: product
// prices, line subtotals, and order totals all flow through this type.
//
// The zero value is invalid; construct instances with NewMoneyFromString,
// NewMoneyFromDecimal, or ZeroMoney.
//
// Example:
//
//	price, err := kernel.NewMoneyFromString("10.50")
//	if err != nil {
//	    // handle malformed amount
//	}
//	subtotal := price.MulInt(2) // 21.00
type Money struct {
	amount        decimal.Decimal
	isConstructed bool
}

// ZeroMoney returns a valid Money of 0.00, the seed for summations.
func ZeroMoney() Money {
	return Money{
		amount:        decimal.Zero,
		isConstructed: true,
	}
}

// NewMoneyFromString parses an amount such as "10.50". It rejects negative
// amounts and amounts with more than two fraction digits.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoneyFromDecimal(d)
}

// NewMoneyFromDecimal creates a Money from an already-parsed decimal, applying
// the same sign and scale rules as NewMoneyFromString. Used when rehydrating
// amounts from the database.
func NewMoneyFromDecimal(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", d.String()),
		)
	}

	if d.Exponent() < -maxMoneyFractionDigits {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s has more than %d fraction digits", d.String(), maxMoneyFractionDigits),
		)
	}

	return Money{
		amount:        d,
		isConstructed: true,
	}, nil
}

// Add returns the exact sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{
		amount:        m.amount.Add(other.amount),
		isConstructed: m.isConstructed && other.isConstructed,
	}
}

// MulInt returns the amount multiplied by an integer quantity. The result
// keeps the two-digit scale exactly; decimal multiplication by an integer
// cannot introduce rounding.
func (m Money) MulInt(quantity int) Money {
	return Money{
		amount:        m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		isConstructed: m.isConstructed,
	}
}

// Decimal returns the underlying decimal value, as needed by persistence DTOs.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsEqual compares two amounts numerically, so 10.5 equals 10.50.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly two fraction digits, e.g. "36.00".
func (m Money) String() string {
	return m.amount.StringFixed(maxMoneyFractionDigits)
}

// Validate returns ErrMoneyIsNotConstructed for the zero value; any Money
// produced by a constructor passes.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
