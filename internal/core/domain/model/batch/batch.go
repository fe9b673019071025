package batch

import (
	"errors"
	"fmt"
	"time"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/errs"
)

var (
	// ErrBatchIsNotConstructed is returned when a Batch instance was not
	// created through NewBatch or RestoreBatch.
	ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch constructor")

	// ErrNotCustodian is returned when an operation reserved for the current
	// custodian is attempted by another identity.
	ErrNotCustodian = errs.NewUnauthorizedError("custodian")

	// ErrNotOriginator is returned when an operation reserved for the batch
	// originator is attempted by another identity.
	ErrNotOriginator = errs.NewUnauthorizedError("originator")

	// ErrAlreadyTampered is returned when a stage-changing operation is
	// attempted while the batch carries unresolved flags.
	ErrAlreadyTampered = errs.NewInvalidStateError("batch is tampered")

	// ErrNotTampered is returned when flag resolution is attempted on a batch
	// with no unresolved flags.
	ErrNotTampered = errs.NewInvalidStateError("batch is not tampered")

	// ErrAlreadySold is returned when any mutation is attempted on a sold
	// batch. Sold is terminal.
	ErrAlreadySold = errs.NewInvalidStateError("batch is already sold")
)

// Batch is the aggregate root for a traceable goods batch. It owns the stage
// state machine, custody and location, the tamper flag ledger, and the
// append-only event history.
//
// Batch maintains these invariants:
//   - The originator is immutable after creation.
//   - Tampered() is true exactly when the flag ledger is non-empty.
//   - History is append-only; events are never mutated or removed.
//   - Once the stage reaches Sold, no stage, custody, or flag mutation is
//     permitted.
//
// All mutating operations take the caller identity and fail with an
// unauthorized error unless the caller holds the required role. Timestamps are
// supplied by the caller so the aggregate stays deterministic under test.
type Batch struct {
	id         kernel.UUID
	originator kernel.Identity
	custodian  kernel.Identity
	location   string
	stage      Stage
	flags      FlagLedger
	history    []Event
	createdAt  time.Time

	isConstructed bool
}

// NewBatch originates a batch. Anyone may originate: there is no authorization
// check. The batch starts in stage Harvested with the originator as custodian,
// an empty flag ledger, and a single Created event in its history.
func NewBatch(id kernel.UUID, originator kernel.Identity, location string, at time.Time) (*Batch, error) {
	b := &Batch{
		stage:         Harvested,
		flags:         NewFlagLedger(),
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setOriginator(originator),
		b.setLocation(location),
		b.setCreatedAt(at),
	); err != nil {
		return nil, err
	}

	b.custodian = originator

	created, err := NewEvent(EventCreated, originator, at, fmt.Sprintf("batch created at %s", location))
	if err != nil {
		return nil, err
	}
	b.history = append(b.history, created)

	return b, nil
}

// RestoreBatch reconstructs a batch from persistence. The tamper state is
// re-derived from the flag set rather than trusted from storage.
func RestoreBatch(
	id kernel.UUID,
	originator kernel.Identity,
	custodian kernel.Identity,
	location string,
	stage Stage,
	flags map[kernel.Identity]string,
	history []Event,
	createdAt time.Time,
) (*Batch, error) {
	if err := errors.Join(
		id.Validate(),
		originator.Validate(),
		custodian.Validate(),
		stage.Validate(),
	); err != nil {
		return nil, err
	}
	if location == "" {
		return nil, errs.NewValueIsRequiredError("location")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}
	if len(history) == 0 {
		return nil, errs.NewValueIsRequiredError("history")
	}

	return &Batch{
		id:            id,
		originator:    originator,
		custodian:     custodian,
		location:      location,
		stage:         stage,
		flags:         RestoreFlagLedger(flags),
		history:       append([]Event(nil), history...),
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Batch instance was properly constructed.
func (b *Batch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBatchIsNotConstructed
	}
	return nil
}

// IsEqual compares two batches by their unique identifiers.
func (b *Batch) IsEqual(other *Batch) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the batch's unique identifier.
func (b *Batch) ID() kernel.UUID {
	return b.id
}

// Originator returns the immutable creator identity.
func (b *Batch) Originator() kernel.Identity {
	return b.originator
}

// Custodian returns the current controlling identity.
func (b *Batch) Custodian() kernel.Identity {
	return b.custodian
}

// Location returns the current location token.
func (b *Batch) Location() string {
	return b.location
}

// Stage returns the current lifecycle stage.
func (b *Batch) Stage() Stage {
	return b.stage
}

// Tampered reports whether the batch carries unresolved flags.
func (b *Batch) Tampered() bool {
	return b.flags.Tampered()
}

// Flags returns a snapshot of the reporter→reason flag mapping.
func (b *Batch) Flags() map[kernel.Identity]string {
	return b.flags.Snapshot()
}

// FlagCount returns the number of unresolved flags.
func (b *Batch) FlagCount() int {
	return b.flags.Count()
}

// History returns a copy of the append-only event history in insertion order.
func (b *Batch) History() []Event {
	return append([]Event(nil), b.history...)
}

// CreatedAt returns the batch creation timestamp.
func (b *Batch) CreatedAt() time.Time {
	return b.createdAt
}

// TransferCustody hands the batch to a new custodian at a new location and
// moves the stage to InTransit.
//
// Requires the caller to be the current custodian. Fails with
// ErrAlreadyTampered while flags are unresolved and ErrAlreadySold once the
// batch is sold.
func (b *Batch) TransferCustody(caller, newCustodian kernel.Identity, newLocation string, at time.Time) error {
	if !b.custodian.IsEqual(caller) {
		return ErrNotCustodian
	}
	if b.flags.Tampered() {
		return ErrAlreadyTampered
	}
	if b.stage.IsSold() {
		return ErrAlreadySold
	}
	if err := newCustodian.Validate(); err != nil {
		return err
	}
	if newLocation == "" {
		return errs.NewValueIsRequiredError("newLocation")
	}

	event, err := NewEvent(EventTransferred, caller, at,
		fmt.Sprintf("custody transferred to %s at %s", newCustodian, newLocation))
	if err != nil {
		return err
	}

	b.custodian = newCustodian
	b.location = newLocation
	b.stage = InTransit
	b.history = append(b.history, event)
	return nil
}

// LogProcessing records a processing step performed by the custodian and moves
// the stage to Processed. Details must be non-empty.
func (b *Batch) LogProcessing(caller kernel.Identity, details string, at time.Time) error {
	return b.logStep(caller, EventProcessed, Processed, details, at)
}

// LogInspection records an inspection performed by the custodian and moves the
// stage to Inspected. Details must be non-empty.
func (b *Batch) LogInspection(caller kernel.Identity, details string, at time.Time) error {
	return b.logStep(caller, EventInspected, Inspected, details, at)
}

func (b *Batch) logStep(caller kernel.Identity, kind EventKind, stage Stage, details string, at time.Time) error {
	if !b.custodian.IsEqual(caller) {
		return ErrNotCustodian
	}
	if b.flags.Tampered() {
		return ErrAlreadyTampered
	}
	if b.stage.IsSold() {
		return ErrAlreadySold
	}
	if details == "" {
		return errs.NewValueIsRequiredError("details")
	}

	event, err := NewEvent(kind, caller, at, details)
	if err != nil {
		return err
	}

	b.stage = stage
	b.history = append(b.history, event)
	return nil
}

// LogDamage records damage observed by the custodian. The custodian's flag is
// recorded (replacing any prior flag it held), the batch becomes tampered, and
// the stage moves to Tampered. Damage may be logged on an already tampered
// batch but not on a sold one.
func (b *Batch) LogDamage(caller kernel.Identity, reason string, at time.Time) error {
	if !b.custodian.IsEqual(caller) {
		return ErrNotCustodian
	}
	if b.stage.IsSold() {
		return ErrAlreadySold
	}

	event, err := NewEvent(EventDamaged, caller, at, reason)
	if err != nil {
		return err
	}

	if err := b.flags.Record(caller, reason); err != nil {
		return err
	}

	b.stage = Tampered
	b.history = append(b.history, event)
	return nil
}

// Flag raises a tamper flag against the batch. Any identity may flag, but each
// identity at most once: a second flag from the same reporter fails with
// ErrAlreadyFlaggedBySender. Flagging a sold batch fails with ErrAlreadySold.
func (b *Batch) Flag(caller kernel.Identity, reason string, at time.Time) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	if b.stage.IsSold() {
		return ErrAlreadySold
	}

	event, err := NewEvent(EventFlagged, caller, at, reason)
	if err != nil {
		return err
	}

	if err := b.flags.Add(caller, reason); err != nil {
		return err
	}

	b.stage = Tampered
	b.history = append(b.history, event)
	return nil
}

// ResolveFlag removes a single reporter's flag. Only the originator may
// resolve, the batch must currently be tampered, and the named reporter must
// hold a flag. When the last flag clears the batch is no longer tampered, but
// the stage remains Tampered until the custodian issues the next
// stage-changing operation: resolving a flag does not silently restore a
// stage.
func (b *Batch) ResolveFlag(caller, flagged kernel.Identity, resolution string, at time.Time) error {
	if !b.originator.IsEqual(caller) {
		return ErrNotOriginator
	}
	if !b.flags.Tampered() {
		return ErrNotTampered
	}
	if !b.flags.HasFlagFrom(flagged) {
		return ErrNotFlagged
	}
	if resolution == "" {
		return errs.NewValueIsRequiredError("resolution")
	}

	event, err := NewEvent(EventFlagResolved, caller, at,
		fmt.Sprintf("flag from %s resolved: %s", flagged, resolution))
	if err != nil {
		return err
	}

	if err := b.flags.Resolve(flagged); err != nil {
		return err
	}

	b.history = append(b.history, event)
	return nil
}

// MarkSold moves the batch to the terminal Sold stage. Only the custodian may
// sell, and a tampered batch cannot be sold.
func (b *Batch) MarkSold(caller kernel.Identity, at time.Time) error {
	if !b.custodian.IsEqual(caller) {
		return ErrNotCustodian
	}
	if b.stage.IsSold() {
		return ErrAlreadySold
	}
	if b.flags.Tampered() {
		return ErrAlreadyTampered
	}

	event, err := NewEvent(EventSold, caller, at, fmt.Sprintf("batch sold by %s", caller))
	if err != nil {
		return err
	}

	b.stage = Sold
	b.history = append(b.history, event)
	return nil
}

// MarkInTransit records shipment movement for an open order: the location is
// updated and the stage moves to InTransit while custody stays with the
// seller. Requires the caller to be the current custodian on a batch that is
// neither tampered nor sold.
func (b *Batch) MarkInTransit(caller kernel.Identity, newLocation string, at time.Time) error {
	if !b.custodian.IsEqual(caller) {
		return ErrNotCustodian
	}
	if b.flags.Tampered() {
		return ErrAlreadyTampered
	}
	if b.stage.IsSold() {
		return ErrAlreadySold
	}
	if newLocation == "" {
		return errs.NewValueIsRequiredError("newLocation")
	}

	event, err := NewEvent(EventTransferred, caller, at,
		fmt.Sprintf("shipment in transit at %s", newLocation))
	if err != nil {
		return err
	}

	b.location = newLocation
	b.stage = InTransit
	b.history = append(b.history, event)
	return nil
}

// ConfirmDelivery completes the order protocol on the batch side: custody
// moves to the buyer, the stage becomes Delivered, and two events are
// appended: the delivery confirmation and the sale to the buyer. Invoked by
// the order state machine after it has validated the buyer and pickup code.
func (b *Batch) ConfirmDelivery(buyer kernel.Identity, at time.Time) error {
	if err := buyer.Validate(); err != nil {
		return err
	}
	if b.stage.IsSold() {
		return ErrAlreadySold
	}

	confirmed, err := NewEvent(EventDeliveryConfirmed, buyer, at,
		fmt.Sprintf("delivery confirmed by %s", buyer))
	if err != nil {
		return err
	}
	sold, err := NewEvent(EventSold, buyer, at, fmt.Sprintf("batch sold to %s", buyer))
	if err != nil {
		return err
	}

	b.custodian = buyer
	b.stage = Delivered
	b.history = append(b.history, confirmed, sold)
	return nil
}

func (b *Batch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Batch) setOriginator(originator kernel.Identity) error {
	if err := originator.Validate(); err != nil {
		return err
	}
	b.originator = originator
	return nil
}

func (b *Batch) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	b.location = location
	return nil
}

func (b *Batch) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	b.createdAt = at
	return nil
}
