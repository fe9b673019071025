package order

import (
	"fmt"

	"provenance/internal/pkg/errs"
)

// Status represents the lifecycle state of a marketplace order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct escrow-backed workflow.
//
// State transitions:
//
//	Pending ──> PaidEscrow ──> InTransit ──┬──> Confirmed
//	                │  ^            │      │
//	                │  └── Problem <┘      │
//	                │         │            │
//	                └─────────┴────────────┴──> Cancelled
//
// Confirmed and Cancelled are terminal and mutually exclusive. Cancellation is
// permitted from any non-terminal state up to confirmation: buyer protection
// by design. Resolving a problem reverts to PaidEscrow; the buyer must still
// explicitly confirm or cancel.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is reserved for an order created before its escrow is funded.
	// Orders placed through the marketplace capture escrow atomically and
	// start in PaidEscrow.
	Pending

	// PaidEscrow indicates the buyer's payment is captured in escrow.
	PaidEscrow

	// InTransit indicates the seller has shipped the batch.
	InTransit

	// Problem indicates the buyer reported an unresolved problem.
	Problem

	// Confirmed indicates the buyer confirmed delivery and escrow was
	// released to the seller. Terminal.
	Confirmed

	// Cancelled indicates the buyer cancelled and escrow was refunded.
	// Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		PaidEscrow: "PaidEscrow",
		InTransit:  "InTransit",
		Problem:    "Problem",
		Confirmed:  "Confirmed",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		PaidEscrow: "PaidEscrow",
		InTransit:  "InTransit",
		Problem:    "Problem",
		Confirmed:  "Confirmed",
		Cancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Invalid values map to "Unknown" rather than erroring.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is Confirmed or Cancelled.
func (s Status) IsTerminal() bool {
	return s == Confirmed || s == Cancelled
}

// MarkInTransit transitions the status to InTransit.
// Only valid from exactly PaidEscrow.
func (s Status) MarkInTransit() (Status, error) {
	if s != PaidEscrow {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order cannot be marked in transit",
			fmt.Errorf("status is %s", s.String()),
		)
	}
	return InTransit, nil
}

// Confirm transitions the status to Confirmed.
// Valid from InTransit or PaidEscrow; a reported problem must be resolved
// first, and terminal states reject confirmation.
func (s Status) Confirm() (Status, error) {
	if s != InTransit && s != PaidEscrow {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order cannot be confirmed",
			fmt.Errorf("status is %s", s.String()),
		)
	}
	return Confirmed, nil
}

// Cancel transitions the status to Cancelled.
// Valid from any non-terminal state, including after shipment: the buyer may
// cancel right up to confirmation.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order cannot be cancelled",
			fmt.Errorf("status is %s", s.String()),
		)
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return Cancelled, nil
}

// ReportProblem transitions the status to Problem.
// Valid from any non-terminal, non-Problem state.
func (s Status) ReportProblem() (Status, error) {
	if s.IsTerminal() || s == Problem {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order cannot enter problem state",
			fmt.Errorf("status is %s", s.String()),
		)
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return Problem, nil
}

// ResolveProblem reverts the status from Problem to PaidEscrow, resuming the
// pre-problem flow rather than auto-confirming or auto-cancelling.
func (s Status) ResolveProblem() (Status, error) {
	if s != Problem {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order has no problem to resolve",
			fmt.Errorf("status is %s", s.String()),
		)
	}
	return PaidEscrow, nil
}
