// Package deliverynoterepo provides persistence for delivery notes.
package deliverynoterepo

import (
	"time"

	"github.com/google/uuid"

	"parceltrack/internal/core/domain/model/deliverynote"
	"parceltrack/internal/core/domain/model/kernel"
)

// DeliveryNoteDTO represents the database structure for persisting delivery
// notes.
type DeliveryNoteDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	NoteNumber    string    `gorm:"index"`
	NoteDate      *time.Time
	AttachmentRef *string
	CreatedAt     time.Time
}

// TableName specifies the database table name for delivery note entities.
func (DeliveryNoteDTO) TableName() string {
	return "delivery_notes"
}

func fromDomain(note *deliverynote.DeliveryNote) DeliveryNoteDTO {
	return DeliveryNoteDTO{
		ID:            note.ID().Bytes(),
		OrderID:       note.OrderID().Bytes(),
		NoteNumber:    note.NoteNumber(),
		NoteDate:      note.NoteDate(),
		AttachmentRef: note.AttachmentRef(),
		CreatedAt:     note.CreatedAt(),
	}
}

func toDomain(dto DeliveryNoteDTO) (*deliverynote.DeliveryNote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return deliverynote.RestoreDeliveryNote(
		id, orderID, dto.NoteNumber, dto.NoteDate, dto.AttachmentRef, dto.CreatedAt)
}
