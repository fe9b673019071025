package services

import (
	"time"

	"provenance/internal/core/domain/model/batch"
	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/core/domain/model/listing"
	"provenance/internal/core/domain/model/order"
	"provenance/internal/pkg/errs"
)

// ErrCrossReferenceMismatch is returned when the aggregates handed to a trade
// operation do not reference each other, for example an order whose batch id
// differs from the batch being shipped.
var ErrCrossReferenceMismatch = errs.NewValueIsInvalidError(
	"trade aggregates do not reference each other")

// TradeService is a domain service coordinating the marketplace protocol
// across the Listing, Order, and Batch aggregates. Each aggregate enforces its
// own invariants; the service enforces the rules that span them:
//
//   - Only the batch custodian may list a batch, and only while the batch is
//     neither tampered nor sold.
//   - Placing an order consumes the listing and captures the payment in a
//     single step.
//   - Shipment and delivery move the order and the batch in lockstep.
//   - Problem resolution may come from the seller or the batch originator.
//
// The service mutates aggregates in memory only; persisting them atomically is
// the calling use case's transaction concern.
type TradeService struct{}

// NewTradeService creates a new TradeService instance.
func NewTradeService() TradeService {
	return TradeService{}
}

// CreateListing puts a batch up for sale on the seller's behalf. The seller
// must be the batch's current custodian, and a tampered or sold batch cannot
// be listed.
func (s TradeService) CreateListing(
	b *batch.Batch,
	listingID kernel.UUID,
	seller kernel.Identity,
	price kernel.Money,
	description string,
	imageRef string,
	at time.Time,
) (*listing.Listing, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if !b.Custodian().IsEqual(seller) {
		return nil, batch.ErrNotCustodian
	}
	if b.Stage().IsSold() {
		return nil, batch.ErrAlreadySold
	}
	if b.Tampered() {
		return nil, batch.ErrAlreadyTampered
	}

	return listing.NewListing(listingID, b.ID(), seller, price, description, imageRef, at)
}

// PlaceOrder consumes a listing and opens an escrow-backed order for its
// batch. The payment must cover the listing price; the batch must still be in
// a sellable state. On success the listing is consumed and the returned order
// starts in PaidEscrow holding the full payment.
func (s TradeService) PlaceOrder(
	l *listing.Listing,
	b *batch.Batch,
	orderID kernel.UUID,
	buyer kernel.Identity,
	payment kernel.Money,
	pickupCode string,
	at time.Time,
) (*order.Order, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if !l.BatchID().IsEqual(b.ID()) {
		return nil, ErrCrossReferenceMismatch
	}
	if b.Stage().IsSold() {
		return nil, batch.ErrAlreadySold
	}
	if b.Tampered() {
		return nil, batch.ErrAlreadyTampered
	}

	if err := l.Consume(); err != nil {
		return nil, err
	}

	return order.NewOrder(
		orderID, l.ID(), b.ID(),
		buyer, l.Seller(),
		l.Price(), payment,
		pickupCode, at,
	)
}

// MarkInTransit records shipment of an order: the order moves to InTransit and
// the batch's location and stage follow. The caller must be the order's seller
// and the batch's current custodian.
func (s TradeService) MarkInTransit(
	o *order.Order,
	b *batch.Batch,
	caller kernel.Identity,
	newLocation string,
	at time.Time,
) error {
	if err := s.validatePair(o, b); err != nil {
		return err
	}

	if err := o.MarkInTransit(caller); err != nil {
		return err
	}
	return b.MarkInTransit(caller, newLocation, at)
}

// ConfirmDelivery settles the trade: the order releases its escrow to the
// seller and the batch's custody passes to the buyer. The caller must be the
// order's buyer and present the matching pickup code.
func (s TradeService) ConfirmDelivery(
	o *order.Order,
	b *batch.Batch,
	caller kernel.Identity,
	pickupCode string,
	at time.Time,
) error {
	if err := s.validatePair(o, b); err != nil {
		return err
	}

	if err := o.ConfirmDelivery(caller, pickupCode); err != nil {
		return err
	}
	return b.ConfirmDelivery(o.Buyer(), at)
}

// ResolveProblem clears an outstanding problem report on the order. The batch
// supplies the originator identity, so resolution is open to the order's
// seller and the batch's originator alike.
func (s TradeService) ResolveProblem(
	o *order.Order,
	b *batch.Batch,
	caller kernel.Identity,
	details string,
) error {
	if err := s.validatePair(o, b); err != nil {
		return err
	}

	return o.ResolveProblem(caller, b.Originator(), details)
}

func (s TradeService) validatePair(o *order.Order, b *batch.Batch) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := b.Validate(); err != nil {
		return err
	}
	if !o.BatchID().IsEqual(b.ID()) {
		return ErrCrossReferenceMismatch
	}
	return nil
}
