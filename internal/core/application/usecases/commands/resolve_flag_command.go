package commands

import (
	"errors"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/errs"
	"provenance/internal/pkg/guard"
)

var (
	ErrResolveFlagCommandIsNotConstructed = errors.New(
		"ResolveFlagCommand must be created via NewResolveFlagCommand constructor",
	)
	ErrResolutionIsRequired = errs.NewValueIsRequiredError("resolution")
)

// ResolveFlagCommand represents the originator's resolution of a single
// tamper flag raised by a specific reporter.
type ResolveFlagCommand struct { //nolint:recvcheck //using for validation
	batchID    kernel.UUID
	caller     kernel.Identity
	flaggedBy  kernel.Identity
	resolution string

	guard guard.ConstructorGuard
}

// NewResolveFlagCommand creates a command to resolve a tamper flag.
func NewResolveFlagCommand(
	batchID kernel.UUID,
	caller kernel.Identity,
	flaggedBy kernel.Identity,
	resolution string,
) (ResolveFlagCommand, error) {
	cmd := ResolveFlagCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setCaller(caller),
		cmd.setFlaggedBy(flaggedBy),
		cmd.setResolution(resolution),
	); err != nil {
		return ResolveFlagCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveFlagCommand) Validate() error {
	return c.guard.Validate(ErrResolveFlagCommandIsNotConstructed)
}

// BatchID returns the identifier of the flagged batch.
func (c ResolveFlagCommand) BatchID() kernel.UUID {
	return c.batchID
}

// Caller returns the identity resolving the flag.
func (c ResolveFlagCommand) Caller() kernel.Identity {
	return c.caller
}

// FlaggedBy returns the identity whose flag is being resolved.
func (c ResolveFlagCommand) FlaggedBy() kernel.Identity {
	return c.flaggedBy
}

// Resolution returns the resolution note.
func (c ResolveFlagCommand) Resolution() string {
	return c.resolution
}

func (c *ResolveFlagCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *ResolveFlagCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *ResolveFlagCommand) setFlaggedBy(flaggedBy kernel.Identity) error {
	if err := flaggedBy.Validate(); err != nil {
		return err
	}

	c.flaggedBy = flaggedBy
	return nil
}

func (c *ResolveFlagCommand) setResolution(resolution string) error {
	if resolution == "" {
		return ErrResolutionIsRequired
	}

	c.resolution = resolution
	return nil
}
