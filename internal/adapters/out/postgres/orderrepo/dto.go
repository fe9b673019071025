// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient lookup of the open order on a batch.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ListingID       uuid.UUID `gorm:"type:uuid;index"`
	BatchID         uuid.UUID `gorm:"type:uuid;index"`
	Buyer           string
	Seller          string
	Amount          int64
	EscrowStatus    int
	PickupCode      string
	Status          int `gorm:"index"`
	ProblemReported bool
	ProblemDetails  string
	Closed          bool
	CreatedAt       time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// The pickup code is stored verbatim; keeping it out of read models is the
// query layer's concern.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		ListingID:       aggregate.ListingID().Bytes(),
		BatchID:         aggregate.BatchID().Bytes(),
		Buyer:           aggregate.Buyer().String(),
		Seller:          aggregate.Seller().String(),
		Amount:          aggregate.Amount().Amount(),
		EscrowStatus:    int(aggregate.Escrow().Status()),
		PickupCode:      aggregate.PickupCode(),
		Status:          int(aggregate.Status()),
		ProblemReported: aggregate.ProblemReported(),
		ProblemDetails:  aggregate.ProblemDetails(),
		Closed:          aggregate.Closed(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including escrow and problem state using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	listingID, err := kernel.UUIDFromBytes(dto.ListingID[:])
	if err != nil {
		return nil, err
	}

	batchID, err := kernel.UUIDFromBytes(dto.BatchID[:])
	if err != nil {
		return nil, err
	}

	buyer, err := kernel.NewIdentity(dto.Buyer)
	if err != nil {
		return nil, err
	}

	seller, err := kernel.NewIdentity(dto.Seller)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		listingID,
		batchID,
		buyer,
		seller,
		amount,
		order.EscrowStatus(dto.EscrowStatus),
		dto.PickupCode,
		order.Status(dto.Status),
		dto.ProblemReported,
		dto.ProblemDetails,
		dto.Closed,
		dto.CreatedAt,
	)
}
