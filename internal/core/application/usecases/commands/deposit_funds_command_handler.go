package commands

import (
	"context"
)

// DepositFundsCommandHandler handles wallet top-ups, opening the wallet on
// first deposit.
type DepositFundsCommandHandler struct {
	uowFactory WalletUoWFactory
}

// NewDepositFundsCommandHandler creates a handler for wallet deposits.
func NewDepositFundsCommandHandler(uowFactory WalletUoWFactory) DepositFundsCommandHandler {
	return DepositFundsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deposit command.
func (h *DepositFundsCommandHandler) Handle(ctx context.Context, cmd DepositFundsCommand) error {
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

	accountRepo := uow.AccountRepository()
	acc, isNew, err := getOrCreateAccount(ctx, accountRepo, cmd.Owner())
	if err != nil {
		return err
	}

	if err = acc.Credit(cmd.Amount()); err != nil {
		return err
	}

	if err = saveAccount(ctx, accountRepo, acc, isNew); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
