package order

import (
	"errors"
	"time"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNotBuyer is returned when a buyer-only operation is attempted by
	// another identity.
	ErrNotBuyer = errs.NewUnauthorizedError("buyer")

	// ErrNotSeller is returned when a seller-only operation is attempted by
	// another identity.
	ErrNotSeller = errs.NewUnauthorizedError("seller")

	// ErrNotSellerOrOriginator is returned when problem resolution is
	// attempted by an identity that is neither the order's seller nor the
	// batch's originator.
	ErrNotSellerOrOriginator = errs.NewUnauthorizedError("seller or batch originator")

	// ErrInsufficientPayment is returned when the offered payment does not
	// cover the listing price.
	ErrInsufficientPayment = errs.NewValueIsInvalidError("payment does not cover the listing price")

	// ErrInvalidPickupCode is returned when the provided pickup code does not
	// match the stored code.
	ErrInvalidPickupCode = errs.NewValueIsInvalidError("pickup code does not match")

	// ErrOrderAlreadyClosed is returned when a second payout is attempted on
	// an order that already settled its escrow.
	ErrOrderAlreadyClosed = errs.NewInvalidStateError("order is already closed")

	// ErrProblemAlreadyReported is returned when the buyer reports a problem
	// while a prior report is still unresolved.
	ErrProblemAlreadyReported = errs.NewInvalidStateError("order already has an unresolved problem")

	// ErrUnresolvedProblem is returned when delivery confirmation is attempted
	// while a reported problem is outstanding.
	ErrUnresolvedProblem = errs.NewInvalidStateError("order has an unresolved problem")
)

// Order is the aggregate root for an escrow-backed marketplace sale. It links
// the consumed listing and the traded batch, holds the buyer's payment in an
// EscrowAccount, and owns the buyer/seller transaction lifecycle.
//
// Order maintains these invariants:
//   - The escrow amount is conserved: released to the seller on confirmation
//     or refunded to the buyer on cancellation, exactly once.
//   - closed transitions false→true only, and guards every payout path.
//   - Confirmed and Cancelled are terminal and mutually exclusive.
type Order struct {
	id        kernel.UUID
	listingID kernel.UUID
	batchID   kernel.UUID

	buyer  kernel.Identity
	seller kernel.Identity

	amount     kernel.Money
	escrow     EscrowAccount
	pickupCode string

	status          Status
	problemReported bool
	problemDetails  string
	closed          bool
	createdAt       time.Time

	isConstructed bool
}

// NewOrder places an order against a listing: the full payment is captured
// into a fresh escrow and the order starts in PaidEscrow. Fails with
// ErrInsufficientPayment when the payment does not cover the listing price.
//
// The pickup code is stored on the order for later delivery confirmation but
// is deliberately never written into the batch's queryable history; relaying
// it to the buyer is the caller's concern.
func NewOrder(
	id kernel.UUID,
	listingID kernel.UUID,
	batchID kernel.UUID,
	buyer kernel.Identity,
	seller kernel.Identity,
	price kernel.Money,
	payment kernel.Money,
	pickupCode string,
	at time.Time,
) (*Order, error) {
	o := &Order{
		status:        PaidEscrow,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setIDs(id, listingID, batchID),
		o.setParties(buyer, seller),
		o.setPickupCode(pickupCode),
		o.setCreatedAt(at),
	); err != nil {
		return nil, err
	}

	if !payment.Covers(price) {
		return nil, ErrInsufficientPayment
	}

	escrow, err := NewEscrowAccount(payment)
	if err != nil {
		return nil, err
	}

	o.amount = payment
	o.escrow = escrow
	return o, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(
	id kernel.UUID,
	listingID kernel.UUID,
	batchID kernel.UUID,
	buyer kernel.Identity,
	seller kernel.Identity,
	amount kernel.Money,
	escrowStatus EscrowStatus,
	pickupCode string,
	status Status,
	problemReported bool,
	problemDetails string,
	closed bool,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		problemReported: problemReported,
		problemDetails:  problemDetails,
		closed:          closed,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setIDs(id, listingID, batchID),
		o.setParties(buyer, seller),
		o.setPickupCode(pickupCode),
		o.setCreatedAt(createdAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	escrow, err := RestoreEscrowAccount(amount, escrowStatus)
	if err != nil {
		return nil, err
	}

	o.amount = amount
	o.escrow = escrow
	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ListingID returns the identifier of the consumed listing.
func (o *Order) ListingID() kernel.UUID {
	return o.listingID
}

// BatchID returns the identifier of the traded batch.
func (o *Order) BatchID() kernel.UUID {
	return o.batchID
}

// Buyer returns the buyer identity.
func (o *Order) Buyer() kernel.Identity {
	return o.buyer
}

// Seller returns the seller identity.
func (o *Order) Seller() kernel.Identity {
	return o.seller
}

// Amount returns the captured payment amount.
func (o *Order) Amount() kernel.Money {
	return o.amount
}

// Escrow returns the current escrow account state.
func (o *Order) Escrow() EscrowAccount {
	return o.escrow
}

// PickupCode returns the stored pickup code. Confidential handling of the
// code is the caller's concern.
func (o *Order) PickupCode() string {
	return o.pickupCode
}

// Status returns the current order status.
func (o *Order) Status() Status {
	return o.status
}

// ProblemReported reports whether an unresolved problem is outstanding.
func (o *Order) ProblemReported() bool {
	return o.problemReported
}

// ProblemDetails returns the details of the most recent problem report.
func (o *Order) ProblemDetails() string {
	return o.problemDetails
}

// Closed reports whether the escrow has paid out.
func (o *Order) Closed() bool {
	return o.closed
}

// CreatedAt returns the order creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// MarkInTransit records that the seller shipped the batch. Requires the
// caller to be the seller and the order to be exactly in PaidEscrow.
func (o *Order) MarkInTransit(caller kernel.Identity) error {
	if !o.seller.IsEqual(caller) {
		return ErrNotSeller
	}

	newStatus, err := o.status.MarkInTransit()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ConfirmDelivery settles the order in the seller's favor. Requires the
// caller to be the buyer, the order to be in InTransit or PaidEscrow with no
// unresolved problem, and the provided pickup code to match. The escrow is
// released exactly once; the order closes.
func (o *Order) ConfirmDelivery(caller kernel.Identity, providedPickupCode string) error {
	if !o.buyer.IsEqual(caller) {
		return ErrNotBuyer
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}
	if o.problemReported {
		return ErrUnresolvedProblem
	}
	if providedPickupCode != o.pickupCode {
		return ErrInvalidPickupCode
	}

	if err := o.ReleasePayment(); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel settles the order in the buyer's favor: the full escrow is refunded
// and the order closes. Permitted from any non-terminal state, including
// after shipment, up to confirmation.
func (o *Order) Cancel(caller kernel.Identity) error {
	if !o.buyer.IsEqual(caller) {
		return ErrNotBuyer
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	if err := o.RefundPayment(); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ReportProblem records a buyer problem report and moves the order to
// Problem. Requires non-empty details and no outstanding report.
func (o *Order) ReportProblem(caller kernel.Identity, details string) error {
	if !o.buyer.IsEqual(caller) {
		return ErrNotBuyer
	}
	if o.problemReported {
		return ErrProblemAlreadyReported
	}
	if details == "" {
		return errs.NewValueIsRequiredError("details")
	}

	newStatus, err := o.status.ReportProblem()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.problemReported = true
	o.problemDetails = details
	return nil
}

// ResolveProblem clears an outstanding problem report and reverts the order
// to PaidEscrow; the buyer must still explicitly confirm or cancel. The
// caller must be the order's seller or the traded batch's originator, whose
// identity is supplied by the coordinating service.
func (o *Order) ResolveProblem(caller, batchOriginator kernel.Identity, details string) error {
	if !o.seller.IsEqual(caller) && !batchOriginator.IsEqual(caller) {
		return ErrNotSellerOrOriginator
	}
	if details == "" {
		return errs.NewValueIsRequiredError("details")
	}

	newStatus, err := o.status.ResolveProblem()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.problemReported = false
	o.problemDetails = details
	return nil
}

// ReleasePayment settles the escrow toward the seller exactly once.
// A second payout attempt fails with ErrOrderAlreadyClosed.
func (o *Order) ReleasePayment() error {
	if o.closed {
		return ErrOrderAlreadyClosed
	}
	if err := o.escrow.Release(); err != nil {
		return err
	}
	o.closed = true
	return nil
}

// RefundPayment settles the escrow back toward the buyer exactly once.
// A second payout attempt fails with ErrOrderAlreadyClosed.
func (o *Order) RefundPayment() error {
	if o.closed {
		return ErrOrderAlreadyClosed
	}
	if err := o.escrow.Refund(); err != nil {
		return err
	}
	o.closed = true
	return nil
}

func (o *Order) setIDs(id, listingID, batchID kernel.UUID) error {
	if err := errors.Join(id.Validate(), listingID.Validate(), batchID.Validate()); err != nil {
		return err
	}
	o.id = id
	o.listingID = listingID
	o.batchID = batchID
	return nil
}

func (o *Order) setParties(buyer, seller kernel.Identity) error {
	if err := errors.Join(buyer.Validate(), seller.Validate()); err != nil {
		return err
	}
	o.buyer = buyer
	o.seller = seller
	return nil
}

func (o *Order) setPickupCode(pickupCode string) error {
	if pickupCode == "" {
		return errs.NewValueIsRequiredError("pickupCode")
	}
	o.pickupCode = pickupCode
	return nil
}

func (o *Order) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = at
	return nil
}
