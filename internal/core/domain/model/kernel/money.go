package kernel

import (
	"fmt"

	"provenance/internal/pkg/errs"
)

// Money is a value object representing a non-negative amount in the smallest
// currency unit. It is used for listing prices, order payments, and escrow
// balances. Money is immutable; arithmetic methods return new values.
//
// The zero value represents a zero amount and is valid wherever a zero amount
// is meaningful (for example an emptied escrow).
type Money struct {
	amount int64
}

// NewMoney creates a Money value from an amount in the smallest currency unit.
// Negative amounts are rejected.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}
	return Money{amount: amount}, nil
}

// Amount returns the amount in the smallest currency unit.
func (m Money) Amount() int64 {
	return m.amount
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// Add returns the sum of this amount and other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Sub returns this amount less other.
// Fails when the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	if other.amount > m.amount {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("cannot subtract %d from %d", other.amount, m.amount))
	}
	return Money{amount: m.amount - other.amount}, nil
}

// Covers reports whether this amount is greater than or equal to other.
// Used to check that a payment covers a listing price.
func (m Money) Covers(other Money) bool {
	return m.amount >= other.amount
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String formats the amount for logs and error messages.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}
