package commands

import (
	"context"
	"time"

	"provenance/internal/core/domain/services"
)

// MarkOrderInTransitCommandHandler handles shipment notices. The order moves
// to InTransit and the batch's location and stage follow in the same
// transaction.
type MarkOrderInTransitCommandHandler struct {
	uowFactory   CustodyUoWFactory
	tradeService services.TradeService
}

// NewMarkOrderInTransitCommandHandler creates a handler for shipment notices.
func NewMarkOrderInTransitCommandHandler(
	uowFactory CustodyUoWFactory,
	tradeService services.TradeService,
) MarkOrderInTransitCommandHandler {
	return MarkOrderInTransitCommandHandler{
		uowFactory:   uowFactory,
		tradeService: tradeService,
	}
}

// Handle processes the shipment notice command.
func (h *MarkOrderInTransitCommandHandler) Handle(ctx context.Context, cmd MarkOrderInTransitCommand) error {
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

	orderRepo := uow.OrderRepository()
	targetOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	batchRepo := uow.BatchRepository()
	targetBatch, err := batchRepo.Get(ctx, targetOrder.BatchID())
	if err != nil {
		return err
	}

	if err = h.tradeService.MarkInTransit(
		targetOrder, targetBatch, cmd.Caller(), cmd.NewLocation(), time.Now().UTC(),
	); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, targetOrder); err != nil {
		return err
	}
	if err = batchRepo.Update(ctx, targetBatch); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
