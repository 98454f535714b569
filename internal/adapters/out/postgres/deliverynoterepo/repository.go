package deliverynoterepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"parceltrack/internal/core/domain/model/deliverynote"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// GormDeliveryNoteRepository implements DeliveryNoteRepository using GORM.
type GormDeliveryNoteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryNoteRepository creates a new GORM delivery note repository.
func NewGormDeliveryNoteRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryNoteRepository {
	return &GormDeliveryNoteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery note to the database.
func (r *GormDeliveryNoteRepository) Add(ctx context.Context, note *deliverynote.DeliveryNote) error {
	if err := note.Validate(); err != nil {
		return err
	}

	dto := fromDomain(note)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(note.ID(), note)
	return nil
}

// Update saves an existing delivery note to the database.
func (r *GormDeliveryNoteRepository) Update(ctx context.Context, note *deliverynote.DeliveryNote) error {
	if err := note.Validate(); err != nil {
		return err
	}

	dto := fromDomain(note)
	result := r.db.WithContext(ctx).Model(&DeliveryNoteDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(note.ID(), note)
	return nil
}

// Get retrieves a delivery note by ID.
func (r *GormDeliveryNoteRepository) Get(ctx context.Context, id kernel.UUID) (*deliverynote.DeliveryNote, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryNoteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery note", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves every delivery note registered against an order.
func (r *GormDeliveryNoteRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*deliverynote.DeliveryNote, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryNoteDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	notes := make([]*deliverynote.DeliveryNote, 0, len(dtos))
	for _, dto := range dtos {
		note, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	return notes, nil
}
