package account

import (
	"errors"
	"fmt"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/errs"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was not
	// created through NewAccount or RestoreAccount.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

	// ErrInsufficientFunds is returned when a debit exceeds the account balance.
	ErrInsufficientFunds = errs.NewValueIsInvalidError("insufficient funds")
)

// Account is the aggregate root for a participant's wallet. Balances only move
// through Credit and Debit, and a debit never takes the balance below zero.
// Escrow capture debits the buyer on order placement; settlement credits the
// seller or refunds the buyer.
type Account struct {
	owner   kernel.Identity
	balance kernel.Money

	isConstructed bool
}

// NewAccount opens a wallet for a participant with a zero balance.
func NewAccount(owner kernel.Identity) (*Account, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}
	return &Account{owner: owner, isConstructed: true}, nil
}

// RestoreAccount reconstructs a wallet from persistence.
func RestoreAccount(owner kernel.Identity, balance kernel.Money) (*Account, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}
	return &Account{owner: owner, balance: balance, isConstructed: true}, nil
}

// Validate ensures the Account instance was properly constructed.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// IsEqual compares two accounts by their owner identity.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.owner.IsEqual(other.owner)
}

// Owner returns the identity the wallet belongs to.
func (a *Account) Owner() kernel.Identity {
	return a.owner
}

// Balance returns the current balance.
func (a *Account) Balance() kernel.Money {
	return a.balance
}

// Credit adds a positive amount to the balance.
func (a *Account) Credit(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("credit of %s is not positive", amount))
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Debit removes a positive amount from the balance.
// Fails with ErrInsufficientFunds when the balance does not cover the amount.
func (a *Account) Debit(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("debit of %s is not positive", amount))
	}
	if !a.balance.Covers(amount) {
		return ErrInsufficientFunds
	}

	remaining, err := a.balance.Sub(amount)
	if err != nil {
		return err
	}
	a.balance = remaining
	return nil
}
