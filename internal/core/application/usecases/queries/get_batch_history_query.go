package queries

import (
	"errors"
	"time"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/guard"
)

var ErrGetBatchHistoryQueryIsNotConstructed = errors.New(
	"GetBatchHistoryQuery must be created via NewGetBatchHistoryQuery constructor",
)

// GetBatchHistoryQuery retrieves a batch's append-only event history in
// chronological order.
type GetBatchHistoryQuery struct {
	batchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBatchHistoryQuery creates a query for a batch's event history.
func NewGetBatchHistoryQuery(batchID kernel.UUID) (GetBatchHistoryQuery, error) {
	if err := batchID.Validate(); err != nil {
		return GetBatchHistoryQuery{}, err
	}
	return GetBatchHistoryQuery{batchID: batchID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBatchHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetBatchHistoryQueryIsNotConstructed)
}

// BatchID returns the identifier of the requested batch.
func (q GetBatchHistoryQuery) BatchID() kernel.UUID {
	return q.batchID
}

// GetBatchHistoryQueryResponse represents one history event in the read
// model. Pickup codes never appear here: order placement deliberately leaves
// no trace of the code in the batch history.
type GetBatchHistoryQueryResponse struct {
	Kind       string
	Actor      string
	OccurredAt time.Time
	Details    string
}
