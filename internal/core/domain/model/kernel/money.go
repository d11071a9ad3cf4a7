package kernel

import (
	"fmt"

	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created
// through NewMoney, MoneyFromFloat, or ZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney, MoneyFromFloat, or ZeroMoney")

// Money is an immutable non-negative monetary amount rounded to two
// fractional digits at construction. All arithmetic produces a new Money
// and re-runs the non-negative check, so a negative result of Mul is
// rejected the same way as direct negative construction — callers rely on
// that as a guard.
type Money struct {
	amount decimal.Decimal

	guard ConstructorGuard
}

// NewMoney creates a Money from a decimal amount.
// Fails if the amount is negative; the stored amount is rounded to two
// decimal places using banker's rounding, so exact midpoints go to the
// even neighbor.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return Money{
		amount: amount.RoundBank(2),
		guard:  NewConstructorGuard(),
	}, nil
}

// MoneyFromFloat creates a Money from a float64 amount.
// Subject to the same validation and rounding as NewMoney.
func MoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// ZeroMoney returns a properly constructed zero amount.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  NewConstructorGuard(),
	}
}

// Amount returns the rounded decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two Money values as a new Money.
func (m Money) Add(other Money) (Money, error) {
	return NewMoney(m.amount.Add(other.amount))
}

// Mul scales the amount by an integer factor and returns a new Money.
// A negative factor fails the non-negative check.
func (m Money) Mul(factor int) (Money, error) {
	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(factor))))
}

// IsEqual compares two Money values by their rounded amounts.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate checks that the Money value was properly constructed.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
