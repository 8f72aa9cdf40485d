package disputerepo

import (
	"context"
	"errors"

	"agritrade/internal/core/domain/model/dispute"
	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDisputeRepository implements DisputeRepository using GORM.
type GormDisputeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDisputeRepository creates a new GORM dispute repository.
func NewGormDisputeRepository(db *gorm.DB, tracker aggregateTracker) *GormDisputeRepository {
	return &GormDisputeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly raised dispute.
func (r *GormDisputeRepository) Add(ctx context.Context, aggregate *dispute.Dispute) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing dispute using a conditional write on the stored
// version.
func (r *GormDisputeRepository) Update(ctx context.Context, aggregate *dispute.Dispute) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	dto.Version = aggregate.Version() + 1

	tx := r.db.WithContext(ctx)
	result := tx.Model(&DisputeDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err = tx.Model(&DisputeDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("dispute", aggregate.ID().String())
		}
		return errs.NewConcurrencyConflictError("dispute", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a dispute by ID.
func (r *GormDisputeRepository) Get(ctx context.Context, id kernel.UUID) (*dispute.Dispute, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DisputeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dispute", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves every dispute raised against an order, oldest first.
func (r *GormDisputeRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*dispute.Dispute, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DisputeDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("raised_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	disputes := make([]*dispute.Dispute, 0, len(dtos))
	for _, dto := range dtos {
		d, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		disputes = append(disputes, d)
	}

	return disputes, nil
}
