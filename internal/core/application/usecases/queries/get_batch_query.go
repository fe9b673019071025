// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/guard"
)

var ErrGetBatchQueryIsNotConstructed = errors.New(
	"GetBatchQuery must be created via NewGetBatchQuery constructor",
)

// GetBatchQuery retrieves the current state of a single batch: custody,
// location, stage, and tamper status.
type GetBatchQuery struct {
	batchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBatchQuery creates a query for a batch's current state.
func NewGetBatchQuery(batchID kernel.UUID) (GetBatchQuery, error) {
	if err := batchID.Validate(); err != nil {
		return GetBatchQuery{}, err
	}
	return GetBatchQuery{batchID: batchID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBatchQuery) Validate() error {
	return q.guard.Validate(ErrGetBatchQueryIsNotConstructed)
}

// BatchID returns the identifier of the requested batch.
func (q GetBatchQuery) BatchID() kernel.UUID {
	return q.batchID
}

// GetBatchQueryResponse represents a batch in the read model. Tampered is
// re-derived from the flag rows, never read from a stored column.
type GetBatchQueryResponse struct {
	ID         kernel.UUID
	Originator string
	Custodian  string
	Location   string
	Stage      string
	Tampered   bool
	FlagCount  int
	CreatedAt  time.Time
}
