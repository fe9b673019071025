package commands

import (
	"errors"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/guard"
)

var ErrMarkOrderInTransitCommandIsNotConstructed = errors.New(
	"MarkOrderInTransitCommand must be created via NewMarkOrderInTransitCommand constructor",
)

// MarkOrderInTransitCommand represents the seller's notice that an order's
// batch has shipped toward the buyer.
type MarkOrderInTransitCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	caller      kernel.Identity
	newLocation string

	guard guard.ConstructorGuard
}

// NewMarkOrderInTransitCommand creates a command to mark an order in transit.
func NewMarkOrderInTransitCommand(
	orderID kernel.UUID,
	caller kernel.Identity,
	newLocation string,
) (MarkOrderInTransitCommand, error) {
	cmd := MarkOrderInTransitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCaller(caller),
		cmd.setNewLocation(newLocation),
	); err != nil {
		return MarkOrderInTransitCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderInTransitCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderInTransitCommandIsNotConstructed)
}

// OrderID returns the identifier of the shipped order.
func (c MarkOrderInTransitCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Caller returns the identity reporting the shipment.
func (c MarkOrderInTransitCommand) Caller() kernel.Identity {
	return c.caller
}

// NewLocation returns the batch's location in transit.
func (c MarkOrderInTransitCommand) NewLocation() string {
	return c.newLocation
}

func (c *MarkOrderInTransitCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkOrderInTransitCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *MarkOrderInTransitCommand) setNewLocation(newLocation string) error {
	if newLocation == "" {
		return ErrLocationIsRequired
	}

	c.newLocation = newLocation
	return nil
}
