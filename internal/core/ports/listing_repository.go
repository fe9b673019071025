package ports

import (
	"context"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/core/domain/model/listing"
)

// ListingRepository defines the persistence contract for listing aggregates.
type ListingRepository interface {
	// Add persists a new listing aggregate to storage.
	Add(ctx context.Context, aggregate *listing.Listing) error

	// Update persists changes to an existing listing aggregate,
	// in particular its consumption on purchase.
	Update(ctx context.Context, aggregate *listing.Listing) error

	// Get retrieves a listing aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error)

	// GetActiveByBatch retrieves the unconsumed listing for a batch, if any.
	// A batch has at most one active listing at a time.
	GetActiveByBatch(ctx context.Context, batchID kernel.UUID) (*listing.Listing, error)

	// GetAllActive retrieves all listings still open for purchase.
	GetAllActive(ctx context.Context) ([]*listing.Listing, error)
}
