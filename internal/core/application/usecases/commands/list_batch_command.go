package commands

import (
	"errors"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/errs"
	"provenance/internal/pkg/guard"
)

var (
	ErrListBatchCommandIsNotConstructed = errors.New(
		"ListBatchCommand must be created via NewListBatchCommand constructor",
	)
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
	ErrPriceIsInvalid        = errs.NewValueIsInvalidError("price must be positive")
)

// ListBatchCommand represents a request to put a batch up for sale.
type ListBatchCommand struct { //nolint:recvcheck //using for validation
	listingID   kernel.UUID
	batchID     kernel.UUID
	seller      kernel.Identity
	price       kernel.Money
	description string
	imageRef    string

	guard guard.ConstructorGuard
}

// NewListBatchCommand creates a command to list a batch for sale.
// The image reference is optional; everything else is required.
func NewListBatchCommand(
	listingID kernel.UUID,
	batchID kernel.UUID,
	seller kernel.Identity,
	price kernel.Money,
	description string,
	imageRef string,
) (ListBatchCommand, error) {
	cmd := ListBatchCommand{
		imageRef: imageRef,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setListingID(listingID),
		cmd.setBatchID(batchID),
		cmd.setSeller(seller),
		cmd.setPrice(price),
		cmd.setDescription(description),
	); err != nil {
		return ListBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ListBatchCommand) Validate() error {
	return c.guard.Validate(ErrListBatchCommandIsNotConstructed)
}

// ListingID returns the unique identifier for the new listing.
func (c ListBatchCommand) ListingID() kernel.UUID {
	return c.listingID
}

// BatchID returns the identifier of the batch being listed.
func (c ListBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// Seller returns the identity listing the batch.
func (c ListBatchCommand) Seller() kernel.Identity {
	return c.seller
}

// Price returns the asking price.
func (c ListBatchCommand) Price() kernel.Money {
	return c.price
}

// Description returns the listing description.
func (c ListBatchCommand) Description() string {
	return c.description
}

// ImageRef returns the optional image reference.
func (c ListBatchCommand) ImageRef() string {
	return c.imageRef
}

func (c *ListBatchCommand) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}

	c.listingID = listingID
	return nil
}

func (c *ListBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *ListBatchCommand) setSeller(seller kernel.Identity) error {
	if err := seller.Validate(); err != nil {
		return err
	}

	c.seller = seller
	return nil
}

func (c *ListBatchCommand) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *ListBatchCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}
