package queries

import (
	"context"
	"database/sql"
	"errors"

	"provenance/internal/core/domain/model/batch"
	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBatchQueryHandler retrieves a batch's current state from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
// The tamper flag is computed from the flag rows at read time.
type GetBatchQueryHandler struct {
	db *gorm.DB
}

// NewGetBatchQueryHandler creates a handler for batch state queries.
// Requires a GORM database connection for query execution.
func NewGetBatchQueryHandler(db *gorm.DB) GetBatchQueryHandler {
	return GetBatchQueryHandler{db: db}
}

// Handle executes the query to retrieve one batch.
// Returns errs.ErrObjectNotFound when the batch does not exist.
func (h GetBatchQueryHandler) Handle(
	ctx context.Context,
	query GetBatchQuery,
) (GetBatchQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBatchQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.originator,
			b.custodian,
			b.location,
			b.stage,
			b.created_at,
			COUNT(f.flagged_by) AS flag_count
		FROM batches b
		LEFT JOIN batch_flags f ON f.batch_id = b.id
		WHERE b.id = ?
		GROUP BY b.id
	`, query.BatchID().String()).Row()

	var response GetBatchQueryResponse
	var id uuid.UUID
	var stage int

	err := row.Scan(
		&id,
		&response.Originator,
		&response.Custodian,
		&response.Location,
		&stage,
		&response.CreatedAt,
		&response.FlagCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetBatchQueryResponse{}, errs.NewObjectNotFoundError("batch", query.BatchID())
	}
	if err != nil {
		return GetBatchQueryResponse{}, err
	}

	batchID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetBatchQueryResponse{}, err
	}
	response.ID = batchID
	response.Stage = batch.Stage(stage).String()
	response.Tampered = response.FlagCount > 0

	return response, nil
}
