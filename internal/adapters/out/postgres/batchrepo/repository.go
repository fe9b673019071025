package batchrepo

import (
	"context"
	"errors"

	"provenance/internal/core/domain/model/batch"
	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBatchRepository implements BatchRepository using GORM.
type GormBatchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBatchRepository creates a new GORM batch repository.
func NewGormBatchRepository(db *gorm.DB, tracker aggregateTracker) *GormBatchRepository {
	return &GormBatchRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new batch to the database together with its flag and event rows.
func (r *GormBatchRepository) Add(ctx context.Context, aggregate *batch.Batch) error {
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

// Update saves an existing batch to the database. Flag and event rows are
// rewritten from the aggregate so the stored ledger always matches the
// in-memory one.
func (r *GormBatchRepository) Update(ctx context.Context, aggregate *batch.Batch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BatchDTO{}).
		Where("id = ?", dto.ID).
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.replaceChildren(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a batch by ID with its flags and full event history.
func (r *GormBatchRepository) Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BatchDTO
	err := r.withChildren(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("batch", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllTampered retrieves all batches that carry at least one unresolved flag.
func (r *GormBatchRepository) GetAllTampered(ctx context.Context) ([]*batch.Batch, error) {
	var dtos []BatchDTO
	err := r.withChildren(ctx).
		Find(&dtos, "id IN (SELECT DISTINCT batch_id FROM batch_flags)").Error
	if err != nil {
		return nil, err
	}

	batches := make([]*batch.Batch, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}

	return batches, nil
}

func (r *GormBatchRepository) withChildren(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Flags").
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("batch_events.seq")
		})
}

func (r *GormBatchRepository) replaceChildren(ctx context.Context, dto BatchDTO) error {
	db := r.db.WithContext(ctx)

	if err := db.Delete(&BatchFlagDTO{}, "batch_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if len(dto.Flags) > 0 {
		if err := db.Create(&dto.Flags).Error; err != nil {
			return err
		}
	}

	if err := db.Delete(&BatchEventDTO{}, "batch_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if len(dto.Events) > 0 {
		if err := db.Create(&dto.Events).Error; err != nil {
			return err
		}
	}

	return nil
}
