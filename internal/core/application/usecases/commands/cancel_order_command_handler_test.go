package commands_test

import (
	"testing"

	"provenance/internal/core/application/usecases/commands"
	"provenance/internal/core/domain/model/account"
	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newFixtures(t)
	o := f.openOrder(t, kernel.NewUUID())
	buyerAccount, err := account.NewAccount(f.buyer)
	require.NoError(t, err)
	cmd, err := commands.NewCancelOrderCommand(o.ID(), f.buyer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", mock.Anything, f.buyer).Return(buyerAccount, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		accountRepo.On("Update", mock.Anything, buyerAccount).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.Cancelled, o.Status())
	assert.Equal(t, order.EscrowRefunded, o.Escrow().Status())
	assert.True(t, buyerAccount.Balance().IsEqual(o.Amount()), "refund lands in the buyer's wallet")
	orderRepo.AssertExpectations(t)
	accountRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_NotBuyer(t *testing.T) {
	ctx := t.Context()
	f := newFixtures(t)
	o := f.openOrder(t, kernel.NewUUID())
	cmd, _ := commands.NewCancelOrderCommand(o.ID(), f.seller)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrNotBuyer)
	assert.True(t, o.Escrow().IsHeld())
	uow.AssertExpectations(t)
}
