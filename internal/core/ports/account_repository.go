package ports

import (
	"context"

	"provenance/internal/core/domain/model/account"
	"provenance/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for wallet accounts.
type AccountRepository interface {
	// Add persists a new account aggregate to storage.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists a balance change to an existing account.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves the account owned by the given identity.
	Get(ctx context.Context, owner kernel.Identity) (*account.Account, error)
}
