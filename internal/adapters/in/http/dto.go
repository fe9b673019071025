package http

import "time"

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateBatchRequest originates a new batch under the originator's custody.
type CreateBatchRequest struct {
	Originator string `json:"originator"`
	Location   string `json:"location"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// TransferCustodyRequest hands a batch to a new custodian at a new location.
type TransferCustodyRequest struct {
	Caller       string `json:"caller"`
	NewCustodian string `json:"newCustodian"`
	NewLocation  string `json:"newLocation"`
}

// LogStepRequest records a processing or inspection step on a batch.
type LogStepRequest struct {
	Caller  string `json:"caller"`
	Details string `json:"details"`
}

// LogDamageRequest records damage observed by the custodian.
type LogDamageRequest struct {
	Caller string `json:"caller"`
	Reason string `json:"reason"`
}

// FlagBatchRequest raises a tamper flag against a batch.
type FlagBatchRequest struct {
	Caller string `json:"caller"`
	Reason string `json:"reason"`
}

// ResolveFlagRequest resolves one reporter's flag on a batch.
type ResolveFlagRequest struct {
	Caller     string `json:"caller"`
	FlaggedBy  string `json:"flaggedBy"`
	Resolution string `json:"resolution"`
}

// MarkSoldRequest moves a batch to its terminal sold stage.
type MarkSoldRequest struct {
	Caller string `json:"caller"`
}

// ListBatchRequest puts a batch on the market.
type ListBatchRequest struct {
	BatchID     string `json:"batchId"`
	Seller      string `json:"seller"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	ImageRef    string `json:"imageRef,omitempty"`
}

// PlaceOrderRequest purchases an active listing.
type PlaceOrderRequest struct {
	ListingID string `json:"listingId"`
	Buyer     string `json:"buyer"`
	Payment   int64  `json:"payment"`
}

// PlaceOrderResponse returns the new order and its pickup code. This is the
// only place the code ever leaves the system.
type PlaceOrderResponse struct {
	ID         string `json:"id"`
	PickupCode string `json:"pickupCode"`
}

// MarkOrderInTransitRequest records shipment of an open order.
type MarkOrderInTransitRequest struct {
	Caller      string `json:"caller"`
	NewLocation string `json:"newLocation"`
}

// ConfirmDeliveryRequest confirms delivery with the buyer's pickup code.
type ConfirmDeliveryRequest struct {
	Caller     string `json:"caller"`
	PickupCode string `json:"pickupCode"`
}

// CancelOrderRequest cancels an open order and refunds the buyer.
type CancelOrderRequest struct {
	Caller string `json:"caller"`
}

// ProblemRequest reports or resolves a problem on an open order.
type ProblemRequest struct {
	Caller  string `json:"caller"`
	Details string `json:"details"`
}

// DepositFundsRequest tops up a participant's wallet.
type DepositFundsRequest struct {
	Owner  string `json:"owner"`
	Amount int64  `json:"amount"`
}

// Batch is the read model of a batch's current state.
type Batch struct {
	ID         string    `json:"id"`
	Originator string    `json:"originator"`
	Custodian  string    `json:"custodian"`
	Location   string    `json:"location"`
	Stage      string    `json:"stage"`
	Tampered   bool      `json:"tampered"`
	FlagCount  int       `json:"flagCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BatchEvent is one entry of a batch's audit trail.
type BatchEvent struct {
	Kind       string    `json:"kind"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurredAt"`
	Details    string    `json:"details"`
}

// Listing is the read model of an active market listing.
type Listing struct {
	ID          string    `json:"id"`
	BatchID     string    `json:"batchId"`
	Seller      string    `json:"seller"`
	Price       int64     `json:"price"`
	Description string    `json:"description"`
	ImageRef    string    `json:"imageRef,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Order is the read model of an open order. It never carries the pickup code.
type Order struct {
	ID              string    `json:"id"`
	BatchID         string    `json:"batchId"`
	Buyer           string    `json:"buyer"`
	Seller          string    `json:"seller"`
	Amount          int64     `json:"amount"`
	Status          string    `json:"status"`
	ProblemReported bool      `json:"problemReported"`
	CreatedAt       time.Time `json:"createdAt"`
}

// AccountBalance is the read model of a participant's wallet.
type AccountBalance struct {
	Owner   string `json:"owner"`
	Balance int64  `json:"balance"`
}
