package commands

import (
	"errors"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/guard"
)

var ErrReportProblemCommandIsNotConstructed = errors.New(
	"ReportProblemCommand must be created via NewReportProblemCommand constructor",
)

// ReportProblemCommand represents the buyer's report of a problem with an
// open order. A reported problem blocks confirmation until it is resolved.
type ReportProblemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	caller  kernel.Identity
	details string

	guard guard.ConstructorGuard
}

// NewReportProblemCommand creates a command to report an order problem.
func NewReportProblemCommand(
	orderID kernel.UUID,
	caller kernel.Identity,
	details string,
) (ReportProblemCommand, error) {
	cmd := ReportProblemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCaller(caller),
		cmd.setDetails(details),
	); err != nil {
		return ReportProblemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportProblemCommand) Validate() error {
	return c.guard.Validate(ErrReportProblemCommandIsNotConstructed)
}

// OrderID returns the identifier of the troubled order.
func (c ReportProblemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Caller returns the identity reporting the problem.
func (c ReportProblemCommand) Caller() kernel.Identity {
	return c.caller
}

// Details returns the problem description.
func (c ReportProblemCommand) Details() string {
	return c.details
}

func (c *ReportProblemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReportProblemCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *ReportProblemCommand) setDetails(details string) error {
	if details == "" {
		return ErrDetailsAreRequired
	}

	c.details = details
	return nil
}
