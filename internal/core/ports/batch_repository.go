package ports

import (
	"context"

	"provenance/internal/core/domain/model/batch"
	"provenance/internal/core/domain/model/kernel"
)

// BatchRepository defines the persistence contract for batch aggregates.
// A stored batch always carries its full flag ledger and event history;
// the tamper state is re-derived from the ledger on load, never trusted
// from storage.
type BatchRepository interface {
	// Add persists a new batch aggregate to storage.
	// The batch must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *batch.Batch) error

	// Update persists changes to an existing batch aggregate, including its
	// flag ledger and any newly appended history events.
	Update(ctx context.Context, aggregate *batch.Batch) error

	// Get retrieves a batch aggregate by its unique identifier together with
	// its flags and complete event history.
	Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error)

	// GetAllTampered retrieves all batches currently carrying unresolved
	// flags. Used by the tamper audit job.
	GetAllTampered(ctx context.Context) ([]*batch.Batch, error)
}
