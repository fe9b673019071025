// Package listingrepo provides data transfer objects and mapping functions for listing persistence.
// This package implements the repository pattern for the listing domain aggregate, handling
// the conversion between domain entities and database representations.
package listingrepo

import (
	"time"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/core/domain/model/listing"

	"github.com/google/uuid"
)

// ListingDTO represents the database structure for persisting listing aggregates.
// Maps listing domain entities to relational database tables with proper indexing
// for efficient lookup of the active listing on a batch.
type ListingDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	BatchID     uuid.UUID `gorm:"type:uuid;index"`
	Seller      string
	Price       int64
	Description string
	ImageRef    string
	Consumed    bool `gorm:"index"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for listing entities.
// Overrides GORM's default naming convention to use "listings".
func (ListingDTO) TableName() string {
	return "listings"
}

// fromDomain converts a listing domain aggregate to its database representation.
func fromDomain(aggregate *listing.Listing) ListingDTO {
	return ListingDTO{
		ID:          aggregate.ID().Bytes(),
		BatchID:     aggregate.BatchID().Bytes(),
		Seller:      aggregate.Seller().String(),
		Price:       aggregate.Price().Amount(),
		Description: aggregate.Description(),
		ImageRef:    aggregate.ImageRef(),
		Consumed:    aggregate.Consumed(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a listing domain aggregate using RestoreListing.
func toDomain(dto ListingDTO) (*listing.Listing, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	batchID, err := kernel.UUIDFromBytes(dto.BatchID[:])
	if err != nil {
		return nil, err
	}

	seller, err := kernel.NewIdentity(dto.Seller)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return listing.RestoreListing(
		id,
		batchID,
		seller,
		price,
		dto.Description,
		dto.ImageRef,
		dto.Consumed,
		dto.CreatedAt,
	)
}
