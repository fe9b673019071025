package batch

import (
	"fmt"
	"time"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/errs"
)

// EventKind classifies an entry in a batch's lifecycle history.
type EventKind int

const (
	// EventUnknown represents an invalid or undefined event kind.
	EventUnknown EventKind = iota

	// EventCreated records batch origination.
	EventCreated

	// EventTransferred records a custody transfer or shipment movement.
	EventTransferred

	// EventProcessed records a logged processing step.
	EventProcessed

	// EventInspected records a logged inspection.
	EventInspected

	// EventDamaged records damage reported by the custodian.
	EventDamaged

	// EventFlagged records a tamper flag raised by any participant.
	EventFlagged

	// EventFlagResolved records the originator resolving a flag.
	EventFlagResolved

	// EventDeliveryConfirmed records the buyer confirming delivery of an order.
	EventDeliveryConfirmed

	// EventSold records the sale of the batch.
	EventSold
)

func getEventKindStrings() map[EventKind]string {
	return map[EventKind]string{
		EventUnknown:           "Unknown",
		EventCreated:           "Created",
		EventTransferred:       "Transferred",
		EventProcessed:         "Processed",
		EventInspected:         "Inspected",
		EventDamaged:           "Damaged",
		EventFlagged:           "Flagged",
		EventFlagResolved:      "FlagResolved",
		EventDeliveryConfirmed: "DeliveryConfirmed",
		EventSold:              "Sold",
	}
}

func getValidEventKindStrings() map[EventKind]string {
	//nolint:exhaustive // EventUnknown is intentionally excluded as it's invalid
	return map[EventKind]string{
		EventCreated:           "Created",
		EventTransferred:       "Transferred",
		EventProcessed:         "Processed",
		EventInspected:         "Inspected",
		EventDamaged:           "Damaged",
		EventFlagged:           "Flagged",
		EventFlagResolved:      "FlagResolved",
		EventDeliveryConfirmed: "DeliveryConfirmed",
		EventSold:              "Sold",
	}
}

// Validate checks if the EventKind value is valid.
func (k EventKind) Validate() error {
	if _, ok := getValidEventKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("event kind", fmt.Errorf("%d is not a valid event kind", k))
	}
	return nil
}

// String returns the human-readable name of the event kind.
// Invalid values map to "Unknown" rather than erroring.
func (k EventKind) String() string {
	if str, ok := getEventKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// Event is an immutable entry in a batch's append-only history. Events are
// owned exclusively by their batch and never mutated after insertion.
type Event struct {
	kind       EventKind
	actor      kernel.Identity
	occurredAt time.Time
	details    string
}

// NewEvent creates a history event. Kind and actor must be valid, details must
// be non-empty, and the timestamp must be set.
func NewEvent(kind EventKind, actor kernel.Identity, occurredAt time.Time, details string) (Event, error) {
	if err := kind.Validate(); err != nil {
		return Event{}, err
	}
	if err := actor.Validate(); err != nil {
		return Event{}, err
	}
	if occurredAt.IsZero() {
		return Event{}, errs.NewValueIsRequiredError("occurredAt")
	}
	if details == "" {
		return Event{}, errs.NewValueIsRequiredError("details")
	}

	return Event{
		kind:       kind,
		actor:      actor,
		occurredAt: occurredAt,
		details:    details,
	}, nil
}

// Kind returns the event classification.
func (e Event) Kind() EventKind {
	return e.kind
}

// Actor returns the identity that caused the event.
func (e Event) Actor() kernel.Identity {
	return e.actor
}

// OccurredAt returns the event timestamp.
func (e Event) OccurredAt() time.Time {
	return e.occurredAt
}

// Details returns the free-text event description.
func (e Event) Details() string {
	return e.details
}
