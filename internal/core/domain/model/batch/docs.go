// Package batch provides domain entities and business logic for traceable
// goods batches in the provenance system. It implements the Batch aggregate
// root with stage transitions, custody tracking, tamper flags, and an
// append-only event history.
//
// The package includes:
//   - Batch: The aggregate root that owns stage, custody, location, flags, and history
//   - Stage: A state machine over the batch lifecycle stages
//   - FlagLedger: The reporter→reason flag mapping with a derived tamper boolean
//   - Event / EventKind: Immutable history entries
//
// Key business rules:
//   - Only the current custodian may transfer custody or log processing,
//     inspection, damage, or a sale
//   - Any identity may flag a batch, at most once per reporter
//   - Only the originator may resolve flags; the batch stops being tampered
//     only when the last flag clears, and the stage stays Tampered until the
//     custodian issues the next stage-changing operation
//   - Sold is terminal: a sold batch accepts no further mutation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package batch
