package commands

import (
	"context"
	"time"
)

// LogDamageCommandHandler handles custodian damage reports. A damage report
// records a damage event, writes the custodian's flag into the ledger, and
// taints the batch.
type LogDamageCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewLogDamageCommandHandler creates a handler for damage reports.
func NewLogDamageCommandHandler(uowFactory BatchUoWFactory) LogDamageCommandHandler {
	return LogDamageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the damage report command.
func (h *LogDamageCommandHandler) Handle(ctx context.Context, cmd LogDamageCommand) error {
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

	if err = aggregate.LogDamage(cmd.Caller(), cmd.Reason(), time.Now().UTC()); err != nil {
		return err
	}

	if err = batchRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
