package commands

import (
	"context"
	"time"

	"provenance/internal/core/domain/services"
)

// ConfirmDeliveryCommandHandler handles delivery confirmation. In one
// transaction the escrow releases to the seller's wallet, the order closes,
// and batch custody passes to the buyer.
type ConfirmDeliveryCommandHandler struct {
	uowFactory   DeliveryUoWFactory
	tradeService services.TradeService
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
func NewConfirmDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	tradeService services.TradeService,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory:   uowFactory,
		tradeService: tradeService,
	}
}

// Handle processes the delivery confirmation command.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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

	batchRepo := uow.BatchRepository()
	targetBatch, err := batchRepo.Get(ctx, targetOrder.BatchID())
	if err != nil {
		return err
	}

	if err = h.tradeService.ConfirmDelivery(
		targetOrder, targetBatch, cmd.Caller(), cmd.PickupCode(), time.Now().UTC(),
	); err != nil {
		return err
	}

	accountRepo := uow.AccountRepository()
	sellerAccount, isNew, err := getOrCreateAccount(ctx, accountRepo, targetOrder.Seller())
	if err != nil {
		return err
	}
	if err = sellerAccount.Credit(targetOrder.Amount()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, targetOrder); err != nil {
		return err
	}
	if err = batchRepo.Update(ctx, targetBatch); err != nil {
		return err
	}
	if err = saveAccount(ctx, accountRepo, sellerAccount, isNew); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
