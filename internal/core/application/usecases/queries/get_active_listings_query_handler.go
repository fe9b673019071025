package queries

import (
	"context"

	"provenance/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveListingsQueryHandler retrieves all unconsumed listings from the
// database, newest first.
type GetActiveListingsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveListingsQueryHandler creates a handler for open market queries.
// Requires a GORM database connection for query execution.
func NewGetActiveListingsQueryHandler(db *gorm.DB) GetActiveListingsQueryHandler {
	return GetActiveListingsQueryHandler{db: db}
}

// Handle executes the query to retrieve all active listings.
func (h GetActiveListingsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveListingsQuery,
) ([]GetActiveListingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	listings := make([]GetActiveListingsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			batch_id,
			seller,
			price,
			description,
			image_ref,
			created_at
		FROM listings
		WHERE consumed = false
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetActiveListingsQueryResponse
		var id, batchID uuid.UUID

		err = rows.Scan(
			&id,
			&batchID,
			&response.Seller,
			&response.Price,
			&response.Description,
			&response.ImageRef,
			&response.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		listingID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = listingID

		listingBatchID, idErr := kernel.UUIDFromBytes(batchID[:])
		if idErr != nil {
			return nil, idErr
		}
		response.BatchID = listingBatchID

		listings = append(listings, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return listings, nil
}
