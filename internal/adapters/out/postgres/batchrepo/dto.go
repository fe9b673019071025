// Package batchrepo provides data transfer objects and mapping functions for batch persistence.
// This package implements the repository pattern for the batch domain aggregate, handling
// the conversion between domain entities and database representations. A batch row owns
// two child tables, its flag ledger and its append-only event history.
package batchrepo

import (
	"time"

	"provenance/internal/core/domain/model/batch"
	"provenance/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BatchDTO represents the database structure for persisting batch aggregates.
// The tamper state is never stored; it is re-derived from the flag rows on load.
type BatchDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Originator string
	Custodian  string
	Location   string
	Stage      int
	CreatedAt  time.Time
	Flags      []BatchFlagDTO  `gorm:"foreignKey:BatchID;references:ID"`
	Events     []BatchEventDTO `gorm:"foreignKey:BatchID;references:ID"`
}

// TableName specifies the database table name for batch entities.
func (BatchDTO) TableName() string {
	return "batches"
}

// BatchFlagDTO represents one unresolved tamper flag. Each reporter holds at
// most one flag per batch, so the pair forms the primary key.
type BatchFlagDTO struct {
	BatchID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	FlaggedBy string    `gorm:"primaryKey"`
	Reason    string
}

// TableName specifies the database table name for batch flag entities.
func (BatchFlagDTO) TableName() string {
	return "batch_flags"
}

// BatchEventDTO represents one entry of a batch's append-only history.
// The seq column preserves insertion order.
type BatchEventDTO struct {
	BatchID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int       `gorm:"primaryKey"`
	Kind       int
	Actor      string
	OccurredAt time.Time
	Details    string
}

// TableName specifies the database table name for batch event entities.
func (BatchEventDTO) TableName() string {
	return "batch_events"
}

// fromDomain converts a batch domain aggregate to its database representation,
// including flag and event child rows.
func fromDomain(aggregate *batch.Batch) BatchDTO {
	id := aggregate.ID().Bytes()

	flags := make([]BatchFlagDTO, 0, aggregate.FlagCount())
	for reporter, reason := range aggregate.Flags() {
		flags = append(flags, BatchFlagDTO{
			BatchID:   id,
			FlaggedBy: reporter.String(),
			Reason:    reason,
		})
	}

	history := aggregate.History()
	events := make([]BatchEventDTO, 0, len(history))
	for seq, event := range history {
		events = append(events, BatchEventDTO{
			BatchID:    id,
			Seq:        seq,
			Kind:       int(event.Kind()),
			Actor:      event.Actor().String(),
			OccurredAt: event.OccurredAt(),
			Details:    event.Details(),
		})
	}

	return BatchDTO{
		ID:         id,
		Originator: aggregate.Originator().String(),
		Custodian:  aggregate.Custodian().String(),
		Location:   aggregate.Location(),
		Stage:      int(aggregate.Stage()),
		CreatedAt:  aggregate.CreatedAt(),
		Flags:      flags,
		Events:     events,
	}
}

// toDomain converts a database DTO to a batch domain aggregate.
// Expects event rows ordered by seq; reconstructs the complete aggregate
// including the flag ledger using RestoreBatch.
func toDomain(dto BatchDTO) (*batch.Batch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	originator, err := kernel.NewIdentity(dto.Originator)
	if err != nil {
		return nil, err
	}

	custodian, err := kernel.NewIdentity(dto.Custodian)
	if err != nil {
		return nil, err
	}

	flags := make(map[kernel.Identity]string, len(dto.Flags))
	for _, flag := range dto.Flags {
		reporter, flagErr := kernel.NewIdentity(flag.FlaggedBy)
		if flagErr != nil {
			return nil, flagErr
		}
		flags[reporter] = flag.Reason
	}

	history := make([]batch.Event, 0, len(dto.Events))
	for _, row := range dto.Events {
		actor, eventErr := kernel.NewIdentity(row.Actor)
		if eventErr != nil {
			return nil, eventErr
		}

		event, eventErr := batch.NewEvent(batch.EventKind(row.Kind), actor, row.OccurredAt, row.Details)
		if eventErr != nil {
			return nil, eventErr
		}
		history = append(history, event)
	}

	return batch.RestoreBatch(
		id,
		originator,
		custodian,
		dto.Location,
		batch.Stage(dto.Stage),
		flags,
		history,
		dto.CreatedAt,
	)
}
