package commands

import (
	"context"
	"errors"
	"time"

	"provenance/internal/pkg/errs"
)

// ErrBatchHasOpenOrder is returned when a custody transfer or listing is
// attempted on a batch that is committed to an open order. Custody is locked
// until the order confirms or cancels.
var ErrBatchHasOpenOrder = errs.NewInvalidStateError("batch is committed to an open order")

// TransferCustodyCommandHandler handles the business logic for custody
// handover. Custody moves only when the caller is the current custodian, the
// batch is neither tampered nor sold, and no open order holds the batch.
type TransferCustodyCommandHandler struct {
	uowFactory CustodyUoWFactory
}

// NewTransferCustodyCommandHandler creates a handler for custody transfers.
// Requires a CustodyUoWFactory so the open-order lock and the batch mutation
// share one transaction.
func NewTransferCustodyCommandHandler(uowFactory CustodyUoWFactory) TransferCustodyCommandHandler {
	return TransferCustodyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the custody transfer command.
func (h *TransferCustodyCommandHandler) Handle(ctx context.Context, cmd TransferCustodyCommand) error {
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

	if err = aggregate.TransferCustody(
		cmd.Caller(), cmd.NewCustodian(), cmd.NewLocation(), time.Now().UTC(),
	); err != nil {
		return err
	}

	if err = batchRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
