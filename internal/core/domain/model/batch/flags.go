package batch

import (
	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/errs"
)

var (
	// ErrAlreadyFlaggedBySender is returned when a reporter attempts to flag a
	// batch it has already flagged. Each reporter may hold at most one flag.
	ErrAlreadyFlaggedBySender = errs.NewInvalidStateError("batch is already flagged by this reporter")

	// ErrNotFlagged is returned when resolving a flag from a reporter that has
	// no flag on the batch.
	ErrNotFlagged = errs.NewInvalidStateError("batch has no flag from this reporter")
)

// FlagLedger holds the tamper flags raised against a batch: a mapping from
// reporter identity to reason text, with a cached tamper boolean. The cache is
// recomputed on every mutation so it can never drift from the set; it holds
// the invariant tampered == (len(flags) > 0).
type FlagLedger struct {
	flags    map[kernel.Identity]string
	tampered bool
}

// NewFlagLedger creates an empty flag ledger.
func NewFlagLedger() FlagLedger {
	return FlagLedger{flags: make(map[kernel.Identity]string)}
}

// RestoreFlagLedger rebuilds a ledger from persisted reporter→reason pairs.
// The tamper cache is derived from the set, never trusted from storage.
func RestoreFlagLedger(flags map[kernel.Identity]string) FlagLedger {
	ledger := FlagLedger{flags: make(map[kernel.Identity]string, len(flags))}
	for reporter, reason := range flags {
		ledger.flags[reporter] = reason
	}
	ledger.recompute()
	return ledger
}

// Add records a flag from a reporter. Fails with ErrAlreadyFlaggedBySender if
// the reporter already holds a flag on this batch.
func (l *FlagLedger) Add(reporter kernel.Identity, reason string) error {
	if err := reporter.Validate(); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if _, exists := l.flags[reporter]; exists {
		return ErrAlreadyFlaggedBySender
	}

	l.flags[reporter] = reason
	l.recompute()
	return nil
}

// Record upserts a flag from a reporter. Unlike Add it does not reject an
// existing flag; a repeated damage report replaces the prior reason.
func (l *FlagLedger) Record(reporter kernel.Identity, reason string) error {
	if err := reporter.Validate(); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	l.flags[reporter] = reason
	l.recompute()
	return nil
}

// Resolve removes the flag held by reporter. Fails with ErrNotFlagged when no
// such flag exists. Partial resolution leaves the ledger tampered; the cache
// clears only when the last flag is removed.
func (l *FlagLedger) Resolve(reporter kernel.Identity) error {
	if _, exists := l.flags[reporter]; !exists {
		return ErrNotFlagged
	}

	delete(l.flags, reporter)
	l.recompute()
	return nil
}

// Tampered reports whether any flag is outstanding.
func (l *FlagLedger) Tampered() bool {
	return l.tampered
}

// Count returns the number of outstanding flags.
func (l *FlagLedger) Count() int {
	return len(l.flags)
}

// HasFlagFrom reports whether the reporter holds an outstanding flag.
func (l *FlagLedger) HasFlagFrom(reporter kernel.Identity) bool {
	_, exists := l.flags[reporter]
	return exists
}

// ReasonFrom returns the reason text of the reporter's outstanding flag.
func (l *FlagLedger) ReasonFrom(reporter kernel.Identity) (string, bool) {
	reason, exists := l.flags[reporter]
	return reason, exists
}

// Snapshot returns a copy of the reporter→reason mapping.
func (l *FlagLedger) Snapshot() map[kernel.Identity]string {
	snapshot := make(map[kernel.Identity]string, len(l.flags))
	for reporter, reason := range l.flags {
		snapshot[reporter] = reason
	}
	return snapshot
}

func (l *FlagLedger) recompute() {
	l.tampered = len(l.flags) > 0
}
