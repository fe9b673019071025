package commands

import (
	"context"
	"errors"

	"provenance/internal/core/domain/model/account"
	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/core/ports"
	"provenance/internal/pkg/errs"
)

// getOrCreateAccount loads the wallet for an identity, opening an empty one if
// the participant has never held funds. Reports whether the account is new so
// the caller knows to Add rather than Update.
func getOrCreateAccount(
	ctx context.Context,
	repo ports.AccountRepository,
	owner kernel.Identity,
) (*account.Account, bool, error) {
	acc, err := repo.Get(ctx, owner)
	if err == nil {
		return acc, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	acc, err = account.NewAccount(owner)
	if err != nil {
		return nil, false, err
	}
	return acc, true, nil
}

// saveAccount persists a wallet through the right repository call for its
// provenance: Add for accounts opened in this transaction, Update otherwise.
func saveAccount(
	ctx context.Context,
	repo ports.AccountRepository,
	acc *account.Account,
	isNew bool,
) error {
	if isNew {
		return repo.Add(ctx, acc)
	}
	return repo.Update(ctx, acc)
}
