package commands

import (
	"context"
	"time"
)

// LogProcessingCommandHandler handles recording processing steps.
// Only the current custodian may log, and the batch must be neither tampered
// nor sold.
type LogProcessingCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewLogProcessingCommandHandler creates a handler for processing steps.
func NewLogProcessingCommandHandler(uowFactory BatchUoWFactory) LogProcessingCommandHandler {
	return LogProcessingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the log processing command.
func (h *LogProcessingCommandHandler) Handle(ctx context.Context, cmd LogProcessingCommand) error {
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

	if err = aggregate.LogProcessing(cmd.Caller(), cmd.Details(), time.Now().UTC()); err != nil {
		return err
	}

	if err = batchRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
