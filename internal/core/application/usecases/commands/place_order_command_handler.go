package commands

import (
	"context"
	"time"

	"provenance/internal/core/domain/services"

	"github.com/google/uuid"
)

// PlaceOrderCommandHandler handles order placement. In one transaction the
// buyer's wallet is debited, the payment captured into escrow, the listing
// consumed, and the order opened in PaidEscrow.
//
// The generated pickup code is returned to the buyer once and never appears
// in the batch's queryable history.
type PlaceOrderCommandHandler struct {
	uowFactory   TradeUoWFactory
	tradeService services.TradeService
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory TradeUoWFactory,
	tradeService services.TradeService,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:   uowFactory,
		tradeService: tradeService,
	}
}

// Handle processes the order placement command and returns the pickup code
// the buyer will present on delivery.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	listingRepo := uow.ListingRepository()
	targetListing, err := listingRepo.Get(ctx, cmd.ListingID())
	if err != nil {
		return "", err
	}

	targetBatch, err := uow.BatchRepository().Get(ctx, targetListing.BatchID())
	if err != nil {
		return "", err
	}

	accountRepo := uow.AccountRepository()
	buyerAccount, isNew, err := getOrCreateAccount(ctx, accountRepo, cmd.Buyer())
	if err != nil {
		return "", err
	}
	if err = buyerAccount.Debit(cmd.Payment()); err != nil {
		return "", err
	}

	pickupCode := uuid.NewString()
	newOrder, err := h.tradeService.PlaceOrder(
		targetListing, targetBatch,
		cmd.OrderID(), cmd.Buyer(), cmd.Payment(),
		pickupCode, time.Now().UTC(),
	)
	if err != nil {
		return "", err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return "", err
	}
	if err = listingRepo.Update(ctx, targetListing); err != nil {
		return "", err
	}
	if err = saveAccount(ctx, accountRepo, buyerAccount, isNew); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return pickupCode, nil
}
