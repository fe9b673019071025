package order

import (
	"fmt"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/errs"
)

// ErrEscrowAlreadySettled is returned when a release or refund is attempted on
// an escrow that has already paid out. Escrow funds are a strictly linear
// resource: captured once, settled exactly once.
var ErrEscrowAlreadySettled = errs.NewInvalidStateError("escrow has already been settled")

// EscrowStatus represents the settlement state of captured funds.
type EscrowStatus int

const (
	// EscrowUnknown represents an invalid or undefined escrow status.
	EscrowUnknown EscrowStatus = iota

	// EscrowHeld indicates the captured amount is held for the order.
	EscrowHeld

	// EscrowReleased indicates the amount was paid out to the seller.
	EscrowReleased

	// EscrowRefunded indicates the amount was returned to the buyer.
	EscrowRefunded
)

func getEscrowStatusStrings() map[EscrowStatus]string {
	return map[EscrowStatus]string{
		EscrowUnknown:  "Unknown",
		EscrowHeld:     "Held",
		EscrowReleased: "Released",
		EscrowRefunded: "Refunded",
	}
}

// Validate checks if the EscrowStatus value is valid.
func (s EscrowStatus) Validate() error {
	switch s {
	case EscrowHeld, EscrowReleased, EscrowRefunded:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("escrow status",
			fmt.Errorf("%d is not a valid escrow status", s))
	}
}

// String returns the human-readable name of the escrow status.
// Invalid values map to "Unknown" rather than erroring.
func (s EscrowStatus) String() string {
	if str, ok := getEscrowStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// EscrowAccount holds the funds captured for exactly one order until they are
// released to the seller or refunded to the buyer. The amount is conserved:
// it pays out to exactly one party, exactly once.
type EscrowAccount struct {
	amount kernel.Money
	status EscrowStatus
}

// NewEscrowAccount captures an amount into a fresh escrow in Held status.
// The captured amount must be positive.
func NewEscrowAccount(amount kernel.Money) (EscrowAccount, error) {
	if !amount.IsPositive() {
		return EscrowAccount{}, errs.NewValueIsInvalidErrorWithCause("escrow amount",
			fmt.Errorf("%s is not positive", amount))
	}
	return EscrowAccount{amount: amount, status: EscrowHeld}, nil
}

// RestoreEscrowAccount reconstructs an escrow from persistence.
func RestoreEscrowAccount(amount kernel.Money, status EscrowStatus) (EscrowAccount, error) {
	if err := status.Validate(); err != nil {
		return EscrowAccount{}, err
	}
	return EscrowAccount{amount: amount, status: status}, nil
}

// Amount returns the captured amount.
func (e EscrowAccount) Amount() kernel.Money {
	return e.amount
}

// Status returns the settlement status.
func (e EscrowAccount) Status() EscrowStatus {
	return e.status
}

// IsHeld reports whether the escrow still holds the captured funds.
func (e EscrowAccount) IsHeld() bool {
	return e.status == EscrowHeld
}

// Release settles the escrow toward the seller.
// Fails with ErrEscrowAlreadySettled unless the escrow is still held.
func (e *EscrowAccount) Release() error {
	if e.status != EscrowHeld {
		return ErrEscrowAlreadySettled
	}
	e.status = EscrowReleased
	return nil
}

// Refund settles the escrow back toward the buyer.
// Fails with ErrEscrowAlreadySettled unless the escrow is still held.
func (e *EscrowAccount) Refund() error {
	if e.status != EscrowHeld {
		return ErrEscrowAlreadySettled
	}
	e.status = EscrowRefunded
	return nil
}
