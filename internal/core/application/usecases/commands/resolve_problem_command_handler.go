package commands

import (
	"context"

	"provenance/internal/core/domain/services"
)

// ResolveProblemCommandHandler handles problem resolution. The batch is
// loaded alongside the order so its originator may resolve problems on
// orders sold by downstream custodians.
type ResolveProblemCommandHandler struct {
	uowFactory   CustodyUoWFactory
	tradeService services.TradeService
}

// NewResolveProblemCommandHandler creates a handler for problem resolution.
func NewResolveProblemCommandHandler(
	uowFactory CustodyUoWFactory,
	tradeService services.TradeService,
) ResolveProblemCommandHandler {
	return ResolveProblemCommandHandler{
		uowFactory:   uowFactory,
		tradeService: tradeService,
	}
}

// Handle processes the problem resolution command.
func (h *ResolveProblemCommandHandler) Handle(ctx context.Context, cmd ResolveProblemCommand) error {
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

	targetBatch, err := uow.BatchRepository().Get(ctx, targetOrder.BatchID())
	if err != nil {
		return err
	}

	if err = h.tradeService.ResolveProblem(
		targetOrder, targetBatch, cmd.Caller(), cmd.Details(),
	); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, targetOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
