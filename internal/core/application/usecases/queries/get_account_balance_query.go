package queries

import (
	"errors"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/guard"
)

var ErrGetAccountBalanceQueryIsNotConstructed = errors.New(
	"GetAccountBalanceQuery must be created via NewGetAccountBalanceQuery constructor",
)

// GetAccountBalanceQuery retrieves a participant's wallet balance.
type GetAccountBalanceQuery struct {
	owner kernel.Identity

	guard guard.ConstructorGuard
}

// NewGetAccountBalanceQuery creates a query for a wallet balance.
func NewGetAccountBalanceQuery(owner kernel.Identity) (GetAccountBalanceQuery, error) {
	if err := owner.Validate(); err != nil {
		return GetAccountBalanceQuery{}, err
	}
	return GetAccountBalanceQuery{owner: owner, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAccountBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountBalanceQueryIsNotConstructed)
}

// Owner returns the wallet owner.
func (q GetAccountBalanceQuery) Owner() kernel.Identity {
	return q.owner
}

// GetAccountBalanceQueryResponse represents a wallet balance in the read
// model. A participant with no wallet yet reads as a zero balance.
type GetAccountBalanceQueryResponse struct {
	Owner   string
	Balance int64
}
