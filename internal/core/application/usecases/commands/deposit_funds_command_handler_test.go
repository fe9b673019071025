package commands_test

import (
	"testing"

	"provenance/internal/core/application/usecases/commands"
	"provenance/internal/core/domain/model/account"
	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDepositFundsCommandHandler_Handle_OpensWallet(t *testing.T) {
	ctx := t.Context()
	f := newFixtures(t)
	amount, _ := kernel.NewMoney(500)
	cmd, err := commands.NewDepositFundsCommand(f.buyer, amount)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", mock.Anything, f.buyer).Return(nil, errs.ErrObjectNotFound).Once(),
		accountRepo.On("Add", mock.Anything, mock.AnythingOfType("*account.Account")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWalletUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDepositFundsCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	accountRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDepositFundsCommandHandler_Handle_TopsUpExistingWallet(t *testing.T) {
	ctx := t.Context()
	f := newFixtures(t)
	opening, _ := kernel.NewMoney(100)
	existing, err := account.RestoreAccount(f.buyer, opening)
	require.NoError(t, err)
	amount, _ := kernel.NewMoney(500)
	cmd, _ := commands.NewDepositFundsCommand(f.buyer, amount)

	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", mock.Anything, f.buyer).Return(existing, nil).Once(),
		accountRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWalletUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDepositFundsCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, int64(600), existing.Balance().Amount())
	accountRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDepositFundsCommand_RejectsZeroAmount(t *testing.T) {
	f := newFixtures(t)

	_, err := commands.NewDepositFundsCommand(f.buyer, kernel.Money{})

	require.ErrorIs(t, err, commands.ErrAmountIsInvalid)
}
