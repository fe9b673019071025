package commands

import (
	"context"
	"time"

	"provenance/internal/core/domain/model/batch"
)

// CreateBatchCommandHandler handles the business logic for batch origination.
// Creates new batches in the Harvested stage with the originator holding
// custody and a single creation event in the history.
type CreateBatchCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewCreateBatchCommandHandler creates a handler for batch origination.
// Requires a BatchUoWFactory for transactional persistence.
func NewCreateBatchCommandHandler(uowFactory BatchUoWFactory) CreateBatchCommandHandler {
	return CreateBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch origination command.
// Uses a transaction to ensure the batch is properly persisted or rolled back on error.
func (h *CreateBatchCommandHandler) Handle(ctx context.Context, cmd CreateBatchCommand) error {
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

	newBatch, err := batch.NewBatch(cmd.BatchID(), cmd.Originator(), cmd.Location(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.BatchRepository().Add(ctx, newBatch); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
