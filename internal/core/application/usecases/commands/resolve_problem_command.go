package commands

import (
	"errors"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/guard"
)

var ErrResolveProblemCommandIsNotConstructed = errors.New(
	"ResolveProblemCommand must be created via NewResolveProblemCommand constructor",
)

// ResolveProblemCommand represents the resolution of an outstanding order
// problem by the seller or the batch originator.
type ResolveProblemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	caller  kernel.Identity
	details string

	guard guard.ConstructorGuard
}

// NewResolveProblemCommand creates a command to resolve an order problem.
func NewResolveProblemCommand(
	orderID kernel.UUID,
	caller kernel.Identity,
	details string,
) (ResolveProblemCommand, error) {
	cmd := ResolveProblemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCaller(caller),
		cmd.setDetails(details),
	); err != nil {
		return ResolveProblemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveProblemCommand) Validate() error {
	return c.guard.Validate(ErrResolveProblemCommandIsNotConstructed)
}

// OrderID returns the identifier of the troubled order.
func (c ResolveProblemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Caller returns the identity resolving the problem.
func (c ResolveProblemCommand) Caller() kernel.Identity {
	return c.caller
}

// Details returns the resolution note.
func (c ResolveProblemCommand) Details() string {
	return c.details
}

func (c *ResolveProblemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ResolveProblemCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *ResolveProblemCommand) setDetails(details string) error {
	if details == "" {
		return ErrDetailsAreRequired
	}

	c.details = details
	return nil
}
