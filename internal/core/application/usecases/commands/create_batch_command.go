package commands

import (
	"errors"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/errs"
	"provenance/internal/pkg/guard"
)

var (
	ErrCreateBatchCommandIsNotConstructed = errors.New(
		"CreateBatchCommand must be created via NewCreateBatchCommand constructor",
	)
	ErrLocationIsRequired = errs.NewValueIsRequiredError("location")
)

// CreateBatchCommand represents a request to originate a new traceable batch.
// The originator becomes the batch's first custodian.
type CreateBatchCommand struct { //nolint:recvcheck //using for validation
	batchID    kernel.UUID
	originator kernel.Identity
	location   string

	guard guard.ConstructorGuard
}

// NewCreateBatchCommand creates a command to originate a batch.
// Validates that the batch ID, originator, and location are present.
func NewCreateBatchCommand(
	batchID kernel.UUID,
	originator kernel.Identity,
	location string,
) (CreateBatchCommand, error) {
	cmd := CreateBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setOriginator(originator),
		cmd.setLocation(location),
	); err != nil {
		return CreateBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBatchCommand) Validate() error {
	return c.guard.Validate(ErrCreateBatchCommandIsNotConstructed)
}

// BatchID returns the unique identifier for the new batch.
func (c CreateBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// Originator returns the identity originating the batch.
func (c CreateBatchCommand) Originator() kernel.Identity {
	return c.originator
}

// Location returns the batch's origin location.
func (c CreateBatchCommand) Location() string {
	return c.location
}

func (c *CreateBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *CreateBatchCommand) setOriginator(originator kernel.Identity) error {
	if err := originator.Validate(); err != nil {
		return err
	}

	c.originator = originator
	return nil
}

func (c *CreateBatchCommand) setLocation(location string) error {
	if location == "" {
		return ErrLocationIsRequired
	}

	c.location = location
	return nil
}
