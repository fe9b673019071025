package commands

import (
	"errors"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/guard"
)

var ErrFlagBatchCommandIsNotConstructed = errors.New(
	"FlagBatchCommand must be created via NewFlagBatchCommand constructor",
)

// FlagBatchCommand represents a tamper report raised against a batch.
// Any participant may raise one flag per batch.
type FlagBatchCommand struct { //nolint:recvcheck //using for validation
	batchID kernel.UUID
	caller  kernel.Identity
	reason  string

	guard guard.ConstructorGuard
}

// NewFlagBatchCommand creates a command to flag a batch.
func NewFlagBatchCommand(
	batchID kernel.UUID,
	caller kernel.Identity,
	reason string,
) (FlagBatchCommand, error) {
	cmd := FlagBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setCaller(caller),
		cmd.setReason(reason),
	); err != nil {
		return FlagBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FlagBatchCommand) Validate() error {
	return c.guard.Validate(ErrFlagBatchCommandIsNotConstructed)
}

// BatchID returns the identifier of the flagged batch.
func (c FlagBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// Caller returns the identity raising the flag.
func (c FlagBatchCommand) Caller() kernel.Identity {
	return c.caller
}

// Reason returns the reported reason.
func (c FlagBatchCommand) Reason() string {
	return c.reason
}

func (c *FlagBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *FlagBatchCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *FlagBatchCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}
