package commands

import (
	"errors"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/errs"
	"provenance/internal/pkg/guard"
)

var (
	ErrLogDamageCommandIsNotConstructed = errors.New(
		"LogDamageCommand must be created via NewLogDamageCommand constructor",
	)
	ErrReasonIsRequired = errs.NewValueIsRequiredError("reason")
)

// LogDamageCommand represents a custodian's report of damage to a batch in
// their care. Damage immediately taints the batch.
type LogDamageCommand struct { //nolint:recvcheck //using for validation
	batchID kernel.UUID
	caller  kernel.Identity
	reason  string

	guard guard.ConstructorGuard
}

// NewLogDamageCommand creates a command to report batch damage.
func NewLogDamageCommand(
	batchID kernel.UUID,
	caller kernel.Identity,
	reason string,
) (LogDamageCommand, error) {
	cmd := LogDamageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setCaller(caller),
		cmd.setReason(reason),
	); err != nil {
		return LogDamageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LogDamageCommand) Validate() error {
	return c.guard.Validate(ErrLogDamageCommandIsNotConstructed)
}

// BatchID returns the identifier of the damaged batch.
func (c LogDamageCommand) BatchID() kernel.UUID {
	return c.batchID
}

// Caller returns the custodian reporting the damage.
func (c LogDamageCommand) Caller() kernel.Identity {
	return c.caller
}

// Reason returns the damage description.
func (c LogDamageCommand) Reason() string {
	return c.reason
}

func (c *LogDamageCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *LogDamageCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *LogDamageCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}
