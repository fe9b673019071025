package accountrepo

import (
	"context"
	"errors"

	"provenance/internal/core/domain/model/account"
	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
// Wallet accounts are identified by owner, not by UUID, so they do not
// participate in aggregate tracking.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Add saves a new wallet account to the database.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves a balance change to an existing wallet account. All columns
// are written because a full debit leaves the balance at zero.
func (r *GormAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AccountDTO{}).
		Where("owner = ?", dto.Owner).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves the wallet account owned by the given identity.
func (r *GormAccountRepository) Get(ctx context.Context, owner kernel.Identity) (*account.Account, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "owner = ?", owner.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", owner.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
