package listingrepo

import (
	"context"
	"errors"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/core/domain/model/listing"
	"provenance/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormListingRepository implements ListingRepository using GORM.
type GormListingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormListingRepository creates a new GORM listing repository.
func NewGormListingRepository(db *gorm.DB, tracker aggregateTracker) *GormListingRepository {
	return &GormListingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new listing to the database.
func (r *GormListingRepository) Add(ctx context.Context, aggregate *listing.Listing) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing listing to the database.
func (r *GormListingRepository) Update(ctx context.Context, aggregate *listing.Listing) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ListingDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a listing by ID.
func (r *GormListingRepository) Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ListingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("listing", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByBatch retrieves the unconsumed listing for a batch, if any.
func (r *GormListingRepository) GetActiveByBatch(ctx context.Context, batchID kernel.UUID) (*listing.Listing, error) {
	if err := batchID.Validate(); err != nil {
		return nil, err
	}

	var dto ListingDTO
	err := r.db.WithContext(ctx).
		First(&dto, "batch_id = ? AND consumed = false", batchID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active listing for batch", batchID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all listings still open for purchase.
func (r *GormListingRepository) GetAllActive(ctx context.Context) ([]*listing.Listing, error) {
	var dtos []ListingDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "consumed = false").Error; err != nil {
		return nil, err
	}

	listings := make([]*listing.Listing, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}

	return listings, nil
}
