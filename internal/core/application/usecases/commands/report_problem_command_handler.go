package commands

import (
	"context"
)

// ReportProblemCommandHandler handles buyer problem reports on open orders.
type ReportProblemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReportProblemCommandHandler creates a handler for problem reports.
func NewReportProblemCommandHandler(uowFactory OrderUoWFactory) ReportProblemCommandHandler {
	return ReportProblemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the problem report command.
func (h *ReportProblemCommandHandler) Handle(ctx context.Context, cmd ReportProblemCommand) error {
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

	if err = targetOrder.ReportProblem(cmd.Caller(), cmd.Details()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, targetOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
