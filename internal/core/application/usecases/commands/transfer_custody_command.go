package commands

import (
	"errors"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/guard"
)

var ErrTransferCustodyCommandIsNotConstructed = errors.New(
	"TransferCustodyCommand must be created via NewTransferCustodyCommand constructor",
)

// TransferCustodyCommand represents a request to hand a batch over to a new
// custodian at a new location.
type TransferCustodyCommand struct { //nolint:recvcheck //using for validation
	batchID      kernel.UUID
	caller       kernel.Identity
	newCustodian kernel.Identity
	newLocation  string

	guard guard.ConstructorGuard
}

// NewTransferCustodyCommand creates a command to transfer batch custody.
func NewTransferCustodyCommand(
	batchID kernel.UUID,
	caller kernel.Identity,
	newCustodian kernel.Identity,
	newLocation string,
) (TransferCustodyCommand, error) {
	cmd := TransferCustodyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setCaller(caller),
		cmd.setNewCustodian(newCustodian),
		cmd.setNewLocation(newLocation),
	); err != nil {
		return TransferCustodyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransferCustodyCommand) Validate() error {
	return c.guard.Validate(ErrTransferCustodyCommandIsNotConstructed)
}

// BatchID returns the identifier of the batch to transfer.
func (c TransferCustodyCommand) BatchID() kernel.UUID {
	return c.batchID
}

// Caller returns the identity requesting the transfer.
func (c TransferCustodyCommand) Caller() kernel.Identity {
	return c.caller
}

// NewCustodian returns the identity receiving custody.
func (c TransferCustodyCommand) NewCustodian() kernel.Identity {
	return c.newCustodian
}

// NewLocation returns the batch's location after the handover.
func (c TransferCustodyCommand) NewLocation() string {
	return c.newLocation
}

func (c *TransferCustodyCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *TransferCustodyCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *TransferCustodyCommand) setNewCustodian(newCustodian kernel.Identity) error {
	if err := newCustodian.Validate(); err != nil {
		return err
	}

	c.newCustodian = newCustodian
	return nil
}

func (c *TransferCustodyCommand) setNewLocation(newLocation string) error {
	if newLocation == "" {
		return ErrLocationIsRequired
	}

	c.newLocation = newLocation
	return nil
}
