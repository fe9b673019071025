package commands

import (
	"context"
	"time"
)

// ResolveFlagCommandHandler handles flag resolution by the batch originator.
// Resolving the last outstanding flag clears the tamper state, though the
// batch's stage keeps recording that it was once tampered.
type ResolveFlagCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewResolveFlagCommandHandler creates a handler for flag resolution.
func NewResolveFlagCommandHandler(uowFactory BatchUoWFactory) ResolveFlagCommandHandler {
	return ResolveFlagCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the flag resolution command.
func (h *ResolveFlagCommandHandler) Handle(ctx context.Context, cmd ResolveFlagCommand) error {
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

	if err = aggregate.ResolveFlag(
		cmd.Caller(), cmd.FlaggedBy(), cmd.Resolution(), time.Now().UTC(),
	); err != nil {
		return err
	}

	if err = batchRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
