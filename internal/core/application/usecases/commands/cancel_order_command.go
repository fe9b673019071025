package commands

import (
	"errors"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents the buyer's cancellation of an open order.
// Cancellation refunds the full escrow to the buyer.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	caller  kernel.Identity

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(orderID kernel.UUID, caller kernel.Identity) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCaller(caller),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the cancelled order.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Caller returns the identity cancelling the order.
func (c CancelOrderCommand) Caller() kernel.Identity {
	return c.caller
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
