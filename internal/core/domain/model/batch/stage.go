package batch

import (
	"fmt"

	"provenance/internal/pkg/errs"
)

// Stage represents the lifecycle stage of a goods batch.
//
// Stage progression:
//
//	Harvested ──> InTransit ──> Processed ──> Inspected ──> Delivered ──> Sold
//	     │             │             │             │             │
//	     └─────────────┴─────────────┴─────────────┴─────────────┘
//	                          │
//	                          v
//	                      Tampered (reachable from any non-terminal stage)
//
// Tampered is absorbing but recoverable: once every flag on the batch is
// resolved the batch accepts stage-changing operations again, but the stage
// itself stays Tampered until the custodian issues the next one. Sold is
// terminal.
type Stage int

const (
	// Unknown represents an invalid or undefined stage.
	Unknown Stage = iota

	// Harvested is the initial stage assigned at batch creation.
	Harvested

	// InTransit indicates the batch is moving between custodians.
	InTransit

	// Processed indicates a processing step was logged by the custodian.
	Processed

	// Inspected indicates an inspection was logged by the custodian.
	Inspected

	// Delivered indicates the batch reached the buyer of a marketplace order.
	Delivered

	// Sold is the terminal stage. No further stage or custody mutation is
	// permitted.
	Sold

	// Tampered indicates the batch carries at least one unresolved flag, or
	// carried one and has not yet been moved to a new stage by the custodian.
	Tampered
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		Unknown:   "Unknown",
		Harvested: "Harvested",
		InTransit: "InTransit",
		Processed: "Processed",
		Inspected: "Inspected",
		Delivered: "Delivered",
		Sold:      "Sold",
		Tampered:  "Tampered",
	}
}

func getValidStageStrings() map[Stage]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Stage]string{
		Harvested: "Harvested",
		InTransit: "InTransit",
		Processed: "Processed",
		Inspected: "Inspected",
		Delivered: "Delivered",
		Sold:      "Sold",
		Tampered:  "Tampered",
	}
}

// Validate checks if the Stage value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Stage) Validate() error {
	if _, ok := getValidStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the human-readable name of the stage.
// Invalid values map to "Unknown" rather than erroring, so the method is safe
// for audit and reporting output on any value.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsSold reports whether the stage is the terminal Sold stage.
func (s Stage) IsSold() bool {
	return s == Sold
}
