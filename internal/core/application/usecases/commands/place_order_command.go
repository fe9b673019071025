package commands

import (
	"errors"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/errs"
	"provenance/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrPaymentIsInvalid = errs.NewValueIsInvalidError("payment must be positive")
)

// PlaceOrderCommand represents a buyer's request to purchase a listed batch.
// The payment is captured into escrow on success.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	listingID kernel.UUID
	buyer     kernel.Identity
	payment   kernel.Money

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order against a listing.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	listingID kernel.UUID,
	buyer kernel.Identity,
	payment kernel.Money,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setListingID(listingID),
		cmd.setBuyer(buyer),
		cmd.setPayment(payment),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ListingID returns the identifier of the listing being purchased.
func (c PlaceOrderCommand) ListingID() kernel.UUID {
	return c.listingID
}

// Buyer returns the identity placing the order.
func (c PlaceOrderCommand) Buyer() kernel.Identity {
	return c.buyer
}

// Payment returns the offered payment amount.
func (c PlaceOrderCommand) Payment() kernel.Money {
	return c.payment
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}

	c.listingID = listingID
	return nil
}

func (c *PlaceOrderCommand) setBuyer(buyer kernel.Identity) error {
	if err := buyer.Validate(); err != nil {
		return err
	}

	c.buyer = buyer
	return nil
}

func (c *PlaceOrderCommand) setPayment(payment kernel.Money) error {
	if !payment.IsPositive() {
		return ErrPaymentIsInvalid
	}

	c.payment = payment
	return nil
}
