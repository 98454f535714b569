// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. This package implements the repository pattern for the
// parcel domain aggregate, handling the conversion between domain entities and
// database representations.
package parcelrepo

import (
	"time"

	"github.com/google/uuid"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. The status is stored under its external string name so the
// rows stay readable and the read-side queries can filter on it directly.
type ParcelDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DeliveryNoteID  *uuid.UUID `gorm:"type:uuid;index"`
	TrackingNumber  string     `gorm:"index"`
	Carrier         string
	Status          string `gorm:"index"`
	StorageLocation *string
	ReceivedAt      *time.Time
	DeliveredAt     *time.Time
	Notes           string
	CreatedAt       time.Time `gorm:"index"`
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(p *parcel.Parcel) ParcelDTO {
	var deliveryNoteID *uuid.UUID
	if id := p.DeliveryNoteID(); id != nil {
		raw := id.Bytes()
		deliveryNoteID = &raw
	}

	return ParcelDTO{
		ID:              p.ID().Bytes(),
		DeliveryNoteID:  deliveryNoteID,
		TrackingNumber:  p.TrackingNumber(),
		Carrier:         p.Carrier(),
		Status:          p.Status().String(),
		StorageLocation: p.StorageLocation(),
		ReceivedAt:      p.ReceivedAt(),
		DeliveredAt:     p.DeliveredAt(),
		Notes:           p.Notes(),
		CreatedAt:       p.CreatedAt(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var deliveryNoteID *kernel.UUID
	if dto.DeliveryNoteID != nil {
		noteID, noteErr := kernel.UUIDFromBytes((*dto.DeliveryNoteID)[:])
		if noteErr != nil {
			return nil, noteErr
		}
		deliveryNoteID = &noteID
	}

	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		deliveryNoteID,
		dto.TrackingNumber,
		dto.Carrier,
		status,
		dto.StorageLocation,
		dto.ReceivedAt,
		dto.DeliveredAt,
		dto.Notes,
		dto.CreatedAt,
	)
}
