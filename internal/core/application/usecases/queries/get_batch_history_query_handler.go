package queries

import (
	"context"

	"provenance/internal/core/domain/model/batch"

	"gorm.io/gorm"
)

// GetBatchHistoryQueryHandler retrieves a batch's event history from the
// database in insertion order.
type GetBatchHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetBatchHistoryQueryHandler creates a handler for history queries.
// Requires a GORM database connection for query execution.
func NewGetBatchHistoryQueryHandler(db *gorm.DB) GetBatchHistoryQueryHandler {
	return GetBatchHistoryQueryHandler{db: db}
}

// Handle executes the query to retrieve a batch's event history.
// Returns an empty slice for an unknown batch.
func (h GetBatchHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetBatchHistoryQuery,
) ([]GetBatchHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := make([]GetBatchHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			kind,
			actor,
			occurred_at,
			details
		FROM batch_events
		WHERE batch_id = ?
		ORDER BY seq
	`, query.BatchID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event GetBatchHistoryQueryResponse
		var kind int

		err = rows.Scan(
			&kind,
			&event.Actor,
			&event.OccurredAt,
			&event.Details,
		)
		if err != nil {
			return nil, err
		}

		event.Kind = batch.EventKind(kind).String()
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
