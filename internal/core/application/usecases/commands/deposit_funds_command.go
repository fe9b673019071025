package commands

import (
	"errors"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/errs"
	"provenance/internal/pkg/guard"
)

var (
	ErrDepositFundsCommandIsNotConstructed = errors.New(
		"DepositFundsCommand must be created via NewDepositFundsCommand constructor",
	)
	ErrAmountIsInvalid = errs.NewValueIsInvalidError("amount must be positive")
)

// DepositFundsCommand represents a top-up of a participant's wallet, funding
// future escrow captures.
type DepositFundsCommand struct { //nolint:recvcheck //using for validation
	owner  kernel.Identity
	amount kernel.Money

	guard guard.ConstructorGuard
}

// NewDepositFundsCommand creates a command to deposit funds into a wallet.
func NewDepositFundsCommand(owner kernel.Identity, amount kernel.Money) (DepositFundsCommand, error) {
	cmd := DepositFundsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwner(owner),
		cmd.setAmount(amount),
	); err != nil {
		return DepositFundsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DepositFundsCommand) Validate() error {
	return c.guard.Validate(ErrDepositFundsCommandIsNotConstructed)
}

// Owner returns the wallet owner.
func (c DepositFundsCommand) Owner() kernel.Identity {
	return c.owner
}

// Amount returns the deposited amount.
func (c DepositFundsCommand) Amount() kernel.Money {
	return c.amount
}

func (c *DepositFundsCommand) setOwner(owner kernel.Identity) error {
	if err := owner.Validate(); err != nil {
		return err
	}

	c.owner = owner
	return nil
}

func (c *DepositFundsCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}
