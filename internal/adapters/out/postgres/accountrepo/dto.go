// Package accountrepo provides data transfer objects and mapping functions for wallet persistence.
// Wallets are keyed by their owner identity rather than a surrogate ID, so the
// owner column is the primary key.
package accountrepo

import (
	"provenance/internal/core/domain/model/account"
	"provenance/internal/core/domain/model/kernel"
)

// AccountDTO represents the database structure for persisting wallet accounts.
type AccountDTO struct {
	Owner   string `gorm:"primaryKey"`
	Balance int64
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts a wallet account aggregate to its database representation.
func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		Owner:   aggregate.Owner().String(),
		Balance: aggregate.Balance().Amount(),
	}
}

// toDomain converts a database DTO to a wallet account aggregate using RestoreAccount.
func toDomain(dto AccountDTO) (*account.Account, error) {
	owner, err := kernel.NewIdentity(dto.Owner)
	if err != nil {
		return nil, err
	}

	balance, err := kernel.NewMoney(dto.Balance)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(owner, balance)
}
