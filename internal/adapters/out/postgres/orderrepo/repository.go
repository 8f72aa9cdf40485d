package orderrepo

import (
	"context"
	"errors"
	"time"

	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/core/domain/model/order"
	"agritrade/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// NextNumber reserves the next order number from the database sequence.
func (r *GormOrderRepository) NextNumber(ctx context.Context) (int64, error) {
	var number int64
	if err := r.db.WithContext(ctx).Raw("SELECT nextval('order_numbers')").Scan(&number).Error; err != nil {
		return 0, err
	}
	return number, nil
}

// Add saves a new order to the database, including its lines and events.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order using a conditional write on the stored
// version. A conflicting concurrent write leaves zero rows affected and
// surfaces a concurrency conflict; the caller retries from a fresh read.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	dto.Version = aggregate.Version() + 1

	tx := r.db.WithContext(ctx)
	result := tx.Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id", "Items", "Events").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err = tx.Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewConcurrencyConflictError("order", aggregate.ID().String())
	}

	// Lines are replaced wholesale; the event history is rewritten from the
	// aggregate, which only ever appends.
	if err = tx.Where("order_id = ?", dto.ID).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) > 0 {
		if err = tx.Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	if err = tx.Where("order_id = ?", dto.ID).Delete(&EventDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Events) > 0 {
		if err = tx.Create(&dto.Events).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its lines, events and counter-offer.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Events", func(db *gorm.DB) *gorm.DB { return db.Order("order_events.id") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a draft order together with its lines, events and messages.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	tx := r.db.WithContext(ctx)
	if err := tx.Where("order_id = ?", id.Bytes()).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}
	if err := tx.Where("order_id = ?", id.Bytes()).Delete(&EventDTO{}).Error; err != nil {
		return err
	}
	if err := tx.Where("order_id = ?", id.Bytes()).Delete(&MessageDTO{}).Error; err != nil {
		return err
	}

	result := tx.Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return nil
}

// GetWithExpiredCounterOffers retrieves orders whose open counter-offer
// deadline is at or before the given instant.
func (r *GormOrderRepository) GetWithExpiredCounterOffers(ctx context.Context, now time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Events", func(db *gorm.DB) *gorm.DB { return db.Order("order_events.id") }).
		Where("counter_offer IS NOT NULL AND (counter_offer->>'expiresAt')::timestamptz <= ?", now).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// AddMessage saves a new message on an order's thread.
func (r *GormOrderRepository) AddMessage(ctx context.Context, message *order.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	dto, err := messageFromDomain(message)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetMessage retrieves a single message by ID.
func (r *GormOrderRepository) GetMessage(ctx context.Context, id kernel.UUID) (*order.Message, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MessageDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("message", id.String())
		}
		return nil, err
	}

	return messageToDomain(dto)
}

// UpdateMessage saves changes to an existing message.
func (r *GormOrderRepository) UpdateMessage(ctx context.Context, message *order.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	dto, err := messageFromDomain(message)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&MessageDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("message", message.ID().String())
	}
	return nil
}

// GetMessages retrieves an order's thread in the order messages were sent.
func (r *GormOrderRepository) GetMessages(ctx context.Context, orderID kernel.UUID) ([]*order.Message, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("sent_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*order.Message, 0, len(dtos))
	for _, dto := range dtos {
		message, domainErr := messageToDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		messages = append(messages, message)
	}

	return messages, nil
}
