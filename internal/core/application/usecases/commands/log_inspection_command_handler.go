package commands

import (
	"context"
	"time"
)

// LogInspectionCommandHandler handles recording inspection steps.
// Only the current custodian may log, and the batch must be neither tampered
// nor sold.
type LogInspectionCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewLogInspectionCommandHandler creates a handler for inspection steps.
func NewLogInspectionCommandHandler(uowFactory BatchUoWFactory) LogInspectionCommandHandler {
	return LogInspectionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the log inspection command.
func (h *LogInspectionCommandHandler) Handle(ctx context.Context, cmd LogInspectionCommand) error {
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

	if err = aggregate.LogInspection(cmd.Caller(), cmd.Details(), time.Now().UTC()); err != nil {
		return err
	}

	if err = batchRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
