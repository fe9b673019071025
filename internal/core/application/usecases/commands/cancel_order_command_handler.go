package commands

import (
	"context"
)

// CancelOrderCommandHandler handles buyer cancellations. The escrow refunds
// into the buyer's wallet and the order closes in the same transaction. The
// batch stays with its current custodian untouched.
type CancelOrderCommandHandler struct {
	uowFactory SettlementUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory SettlementUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = targetOrder.Cancel(cmd.Caller()); err != nil {
		return err
	}

	accountRepo := uow.AccountRepository()
	buyerAccount, isNew, err := getOrCreateAccount(ctx, accountRepo, targetOrder.Buyer())
	if err != nil {
		return err
	}
	if err = buyerAccount.Credit(targetOrder.Amount()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, targetOrder); err != nil {
		return err
	}
	if err = saveAccount(ctx, accountRepo, buyerAccount, isNew); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
