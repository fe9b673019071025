package commands

import (
	"errors"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/errs"
	"provenance/internal/pkg/guard"
)

var (
	ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
		"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
	)
	ErrPickupCodeIsRequired = errs.NewValueIsRequiredError("pickupCode")
)

// ConfirmDeliveryCommand represents the buyer's confirmation that the goods
// arrived, presented together with the pickup code from order placement.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	caller     kernel.Identity
	pickupCode string

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to confirm a delivery.
func NewConfirmDeliveryCommand(
	orderID kernel.UUID,
	caller kernel.Identity,
	pickupCode string,
) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCaller(caller),
		cmd.setPickupCode(pickupCode),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the delivered order.
func (c ConfirmDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Caller returns the identity confirming the delivery.
func (c ConfirmDeliveryCommand) Caller() kernel.Identity {
	return c.caller
}

// PickupCode returns the code presented by the buyer.
func (c ConfirmDeliveryCommand) PickupCode() string {
	return c.pickupCode
}

func (c *ConfirmDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmDeliveryCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *ConfirmDeliveryCommand) setPickupCode(pickupCode string) error {
	if pickupCode == "" {
		return ErrPickupCodeIsRequired
	}

	c.pickupCode = pickupCode
	return nil
}
