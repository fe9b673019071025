package commands

import (
	"context"
	"errors"
	"time"

	"provenance/internal/pkg/errs"
)

// MarkSoldCommandHandler handles direct batch sales. The sale is refused
// while the batch is committed to an open order, since the escrow protocol
// owns the batch's fate until the order closes.
type MarkSoldCommandHandler struct {
	uowFactory CustodyUoWFactory
}

// NewMarkSoldCommandHandler creates a handler for direct sales.
func NewMarkSoldCommandHandler(uowFactory CustodyUoWFactory) MarkSoldCommandHandler {
	return MarkSoldCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the direct sale command.
func (h *MarkSoldCommandHandler) Handle(ctx context.Context, cmd MarkSoldCommand) error {
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

	if _, err := uow.OrderRepository().GetOpenByBatch(ctx, cmd.BatchID()); err == nil {
		return ErrBatchHasOpenOrder
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	batchRepo := uow.BatchRepository()
	aggregate, err := batchRepo.Get(ctx, cmd.BatchID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkSold(cmd.Caller(), time.Now().UTC()); err != nil {
		return err
	}

	if err = batchRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
