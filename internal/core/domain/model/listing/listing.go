package listing

import (
	"errors"
	"time"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/errs"
)

var (
	// ErrListingIsNotConstructed is returned when a Listing instance was not
	// created through NewListing or RestoreListing.
	ErrListingIsNotConstructed = errors.New("Listing must be created via NewListing constructor")

	// ErrListingAlreadyConsumed is returned when an order is placed against a
	// listing that has already been taken off the market.
	ErrListingAlreadyConsumed = errs.NewInvalidStateError("listing has already been consumed")
)

// Listing is the aggregate root for a batch offered for sale. Each listing
// offers exactly one batch at a fixed price and is consumed by at most one
// order: the first successful purchase takes it off the market for good.
type Listing struct {
	id          kernel.UUID
	batchID     kernel.UUID
	seller      kernel.Identity
	price       kernel.Money
	description string
	imageRef    string

	consumed  bool
	createdAt time.Time

	isConstructed bool
}

// NewListing puts a batch up for sale. The price must be positive; the
// description is required, the image reference is optional. Whether the
// seller actually holds custody of the batch is checked by the coordinating
// service, not here.
func NewListing(
	id kernel.UUID,
	batchID kernel.UUID,
	seller kernel.Identity,
	price kernel.Money,
	description string,
	imageRef string,
	at time.Time,
) (*Listing, error) {
	l := &Listing{
		imageRef:      imageRef,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setIDs(id, batchID),
		l.setSeller(seller),
		l.setPrice(price),
		l.setDescription(description),
		l.setCreatedAt(at),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreListing reconstructs a listing from persistence.
func RestoreListing(
	id kernel.UUID,
	batchID kernel.UUID,
	seller kernel.Identity,
	price kernel.Money,
	description string,
	imageRef string,
	consumed bool,
	createdAt time.Time,
) (*Listing, error) {
	l := &Listing{
		imageRef:      imageRef,
		consumed:      consumed,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setIDs(id, batchID),
		l.setSeller(seller),
		l.setPrice(price),
		l.setDescription(description),
		l.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate ensures the Listing instance was properly constructed.
func (l *Listing) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrListingIsNotConstructed
	}
	return nil
}

// IsEqual compares two listings by their unique identifiers.
func (l *Listing) IsEqual(other *Listing) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the listing's unique identifier.
func (l *Listing) ID() kernel.UUID {
	return l.id
}

// BatchID returns the identifier of the offered batch.
func (l *Listing) BatchID() kernel.UUID {
	return l.batchID
}

// Seller returns the seller identity.
func (l *Listing) Seller() kernel.Identity {
	return l.seller
}

// Price returns the asking price.
func (l *Listing) Price() kernel.Money {
	return l.price
}

// Description returns the listing description.
func (l *Listing) Description() string {
	return l.description
}

// ImageRef returns the optional image reference.
func (l *Listing) ImageRef() string {
	return l.imageRef
}

// Consumed reports whether an order has taken the listing off the market.
func (l *Listing) Consumed() bool {
	return l.consumed
}

// IsActive reports whether the listing is still open for purchase.
func (l *Listing) IsActive() bool {
	return !l.consumed
}

// CreatedAt returns the listing creation timestamp.
func (l *Listing) CreatedAt() time.Time {
	return l.createdAt
}

// Consume takes the listing off the market. A listing can be consumed at most
// once; a second attempt fails with ErrListingAlreadyConsumed.
func (l *Listing) Consume() error {
	if l.consumed {
		return ErrListingAlreadyConsumed
	}
	l.consumed = true
	return nil
}

func (l *Listing) setIDs(id, batchID kernel.UUID) error {
	if err := errors.Join(id.Validate(), batchID.Validate()); err != nil {
		return err
	}
	l.id = id
	l.batchID = batchID
	return nil
}

func (l *Listing) setSeller(seller kernel.Identity) error {
	if err := seller.Validate(); err != nil {
		return err
	}
	l.seller = seller
	return nil
}

func (l *Listing) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidError("listing price must be positive")
	}
	l.price = price
	return nil
}

func (l *Listing) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	l.description = description
	return nil
}

func (l *Listing) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	l.createdAt = at
	return nil
}
