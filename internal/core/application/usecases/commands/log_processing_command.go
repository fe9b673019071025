package commands

import (
	"errors"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/errs"
	"provenance/internal/pkg/guard"
)

var (
	ErrLogProcessingCommandIsNotConstructed = errors.New(
		"LogProcessingCommand must be created via NewLogProcessingCommand constructor",
	)
	ErrDetailsAreRequired = errs.NewValueIsRequiredError("details")
)

// LogProcessingCommand represents a request to record a processing step in a
// batch's traceability history.
type LogProcessingCommand struct { //nolint:recvcheck //using for validation
	batchID kernel.UUID
	caller  kernel.Identity
	details string

	guard guard.ConstructorGuard
}

// NewLogProcessingCommand creates a command to log a processing step.
func NewLogProcessingCommand(
	batchID kernel.UUID,
	caller kernel.Identity,
	details string,
) (LogProcessingCommand, error) {
	cmd := LogProcessingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setCaller(caller),
		cmd.setDetails(details),
	); err != nil {
		return LogProcessingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LogProcessingCommand) Validate() error {
	return c.guard.Validate(ErrLogProcessingCommandIsNotConstructed)
}

// BatchID returns the identifier of the batch being processed.
func (c LogProcessingCommand) BatchID() kernel.UUID {
	return c.batchID
}

// Caller returns the identity recording the step.
func (c LogProcessingCommand) Caller() kernel.Identity {
	return c.caller
}

// Details returns the free-form step description.
func (c LogProcessingCommand) Details() string {
	return c.details
}

func (c *LogProcessingCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *LogProcessingCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *LogProcessingCommand) setDetails(details string) error {
	if details == "" {
		return ErrDetailsAreRequired
	}

	c.details = details
	return nil
}
