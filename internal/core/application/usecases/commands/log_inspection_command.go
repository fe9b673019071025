package commands

import (
	"errors"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/guard"
)

var ErrLogInspectionCommandIsNotConstructed = errors.New(
	"LogInspectionCommand must be created via NewLogInspectionCommand constructor",
)

// LogInspectionCommand represents a request to record an inspection step in a
// batch's traceability history.
type LogInspectionCommand struct { //nolint:recvcheck //using for validation
	batchID kernel.UUID
	caller  kernel.Identity
	details string

	guard guard.ConstructorGuard
}

// NewLogInspectionCommand creates a command to log an inspection step.
func NewLogInspectionCommand(
	batchID kernel.UUID,
	caller kernel.Identity,
	details string,
) (LogInspectionCommand, error) {
	cmd := LogInspectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setCaller(caller),
		cmd.setDetails(details),
	); err != nil {
		return LogInspectionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LogInspectionCommand) Validate() error {
	return c.guard.Validate(ErrLogInspectionCommandIsNotConstructed)
}

// BatchID returns the identifier of the batch being inspected.
func (c LogInspectionCommand) BatchID() kernel.UUID {
	return c.batchID
}

// Caller returns the identity recording the step.
func (c LogInspectionCommand) Caller() kernel.Identity {
	return c.caller
}

// Details returns the free-form step description.
func (c LogInspectionCommand) Details() string {
	return c.details
}

func (c *LogInspectionCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *LogInspectionCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *LogInspectionCommand) setDetails(details string) error {
	if details == "" {
		return ErrDetailsAreRequired
	}

	c.details = details
	return nil
}
