package queries

import (
	"errors"
	"time"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/guard"
)

var ErrGetOpenOrdersQueryIsNotConstructed = errors.New(
	"GetOpenOrdersQuery must be created via NewGetOpenOrdersQuery constructor",
)

// GetOpenOrdersQuery retrieves every order that has not yet confirmed or
// cancelled.
type GetOpenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenOrdersQuery creates a query to retrieve all open orders.
func NewGetOpenOrdersQuery() GetOpenOrdersQuery {
	return GetOpenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersQueryIsNotConstructed)
}

// GetOpenOrdersQueryResponse represents one open order in the read model.
// The pickup code is deliberately absent: it is shown to the buyer once at
// placement and never surfaces again.
type GetOpenOrdersQueryResponse struct {
	ID              kernel.UUID
	BatchID         kernel.UUID
	Buyer           string
	Seller          string
	Amount          int64
	Status          string
	ProblemReported bool
	CreatedAt       time.Time
}
