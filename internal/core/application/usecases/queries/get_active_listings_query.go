package queries

import (
	"errors"
	"time"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/guard"
)

var ErrGetActiveListingsQueryIsNotConstructed = errors.New(
	"GetActiveListingsQuery must be created via NewGetActiveListingsQuery constructor",
)

// GetActiveListingsQuery retrieves every listing still open for purchase.
type GetActiveListingsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveListingsQuery creates a query to retrieve the open market.
// This is a parameterless query that fetches all unconsumed listings.
func NewGetActiveListingsQuery() GetActiveListingsQuery {
	return GetActiveListingsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveListingsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveListingsQueryIsNotConstructed)
}

// GetActiveListingsQueryResponse represents one open listing in the read model.
type GetActiveListingsQueryResponse struct {
	ID          kernel.UUID
	BatchID     kernel.UUID
	Seller      string
	Price       int64
	Description string
	ImageRef    string
	CreatedAt   time.Time
}
