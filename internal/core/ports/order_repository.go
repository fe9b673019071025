package ports

import (
	"context"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetOpenByBatch retrieves the open (non-terminal) order for a batch, if
	// any. A batch has at most one open order; its custody is locked while
	// the order stays open.
	GetOpenByBatch(ctx context.Context, batchID kernel.UUID) (*order.Order, error)

	// GetAllOpen retrieves all orders that are not yet confirmed or
	// cancelled. Used by the open problem digest job and the open orders
	// query.
	GetAllOpen(ctx context.Context) ([]*order.Order, error)
}
