package commands

import (
	"context"
	"errors"
	"time"

	"provenance/internal/core/domain/services"
	"provenance/internal/pkg/errs"
)

// ErrBatchAlreadyListed is returned when a batch with an unconsumed listing is
// listed again. A batch is on the market at most once at a time.
var ErrBatchAlreadyListed = errs.NewInvalidStateError("batch already has an active listing")

// ListBatchCommandHandler handles putting a batch on the market. The seller
// must hold custody, the batch must be clean and unsold, and the batch may
// carry neither another active listing nor an open order.
type ListBatchCommandHandler struct {
	uowFactory   MarketUoWFactory
	tradeService services.TradeService
}

// NewListBatchCommandHandler creates a handler for batch listings.
func NewListBatchCommandHandler(
	uowFactory MarketUoWFactory,
	tradeService services.TradeService,
) ListBatchCommandHandler {
	return ListBatchCommandHandler{
		uowFactory:   uowFactory,
		tradeService: tradeService,
	}
}

// Handle processes the listing command.
func (h *ListBatchCommandHandler) Handle(ctx context.Context, cmd ListBatchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	listingRepo := uow.ListingRepository()
	if _, err := listingRepo.GetActiveByBatch(ctx, cmd.BatchID()); err == nil {
		return ErrBatchAlreadyListed
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if _, err := uow.OrderRepository().GetOpenByBatch(ctx, cmd.BatchID()); err == nil {
		return ErrBatchHasOpenOrder
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := uow.BatchRepository().Get(ctx, cmd.BatchID())
	if err != nil {
		return err
	}

	newListing, err := h.tradeService.CreateListing(
		aggregate, cmd.ListingID(), cmd.Seller(),
		cmd.Price(), cmd.Description(), cmd.ImageRef(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = listingRepo.Add(ctx, newListing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
