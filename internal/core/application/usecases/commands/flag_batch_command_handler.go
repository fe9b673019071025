package commands

import (
	"context"
	"time"
)

// FlagBatchCommandHandler handles tamper reports. Flagging taints the batch
// until the originator resolves every flag.
type FlagBatchCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewFlagBatchCommandHandler creates a handler for tamper reports.
func NewFlagBatchCommandHandler(uowFactory BatchUoWFactory) FlagBatchCommandHandler {
	return FlagBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the flag command.
func (h *FlagBatchCommandHandler) Handle(ctx context.Context, cmd FlagBatchCommand) error {
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

	batchRepo := uow.BatchRepository()
	aggregate, err := batchRepo.Get(ctx, cmd.BatchID())
	if err != nil {
		return err
	}

	if err = aggregate.Flag(cmd.Caller(), cmd.Reason(), time.Now().UTC()); err != nil {
		return err
	}

	if err = batchRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
