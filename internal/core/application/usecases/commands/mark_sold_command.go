package commands

import (
	"errors"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/guard"
)

var ErrMarkSoldCommandIsNotConstructed = errors.New(
	"MarkSoldCommand must be created via NewMarkSoldCommand constructor",
)

// MarkSoldCommand represents a direct, off-market sale of a batch by its
// custodian. Sold is terminal: the batch's traceability record is frozen.
type MarkSoldCommand struct { //nolint:recvcheck //using for validation
	batchID kernel.UUID
	caller  kernel.Identity

	guard guard.ConstructorGuard
}

// NewMarkSoldCommand creates a command to mark a batch sold.
func NewMarkSoldCommand(batchID kernel.UUID, caller kernel.Identity) (MarkSoldCommand, error) {
	cmd := MarkSoldCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setCaller(caller),
	); err != nil {
		return MarkSoldCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkSoldCommand) Validate() error {
	return c.guard.Validate(ErrMarkSoldCommandIsNotConstructed)
}

// BatchID returns the identifier of the batch being sold.
func (c MarkSoldCommand) BatchID() kernel.UUID {
	return c.batchID
}

// Caller returns the custodian selling the batch.
func (c MarkSoldCommand) Caller() kernel.Identity {
	return c.caller
}

func (c *MarkSoldCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *MarkSoldCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
