package auditrepo

import (
	"time"

	"github.com/google/uuid"

	"parceltrack/internal/core/domain/model/audit"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// EntryDTO is the GORM data transfer object for audit entries.
type EntryDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ParcelID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID      *uuid.UUID `gorm:"type:uuid"`
	OccurredAt  time.Time  `gorm:"not null;index"`
	Action      string     `gorm:"not null"`
	PriorStatus string     `gorm:"not null"`
	NewStatus   string     `gorm:"not null"`
}

// TableName returns the database table name for audit entries.
func (EntryDTO) TableName() string {
	return "audit_entries"
}

func fromDomain(e *audit.Entry) EntryDTO {
	var userID *uuid.UUID
	if e.UserID() != nil {
		id := e.UserID().Bytes()
		userID = &id
	}

	return EntryDTO{
		ID:          e.ID().Bytes(),
		ParcelID:    e.ParcelID().Bytes(),
		UserID:      userID,
		OccurredAt:  e.OccurredAt(),
		Action:      e.Action(),
		PriorStatus: e.PriorStatus().String(),
		NewStatus:   e.NewStatus().String(),
	}
}

func toDomain(dto EntryDTO) (*audit.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		uid, err := kernel.UUIDFromBytes(dto.UserID[:])
		if err != nil {
			return nil, err
		}
		userID = &uid
	}

	priorStatus, err := parcel.StatusFromString(dto.PriorStatus)
	if err != nil {
		return nil, err
	}

	newStatus, err := parcel.StatusFromString(dto.NewStatus)
	if err != nil {
		return nil, err
	}

	return audit.NewEntry(id, parcelID, userID, dto.OccurredAt, dto.Action, priorStatus, newStatus)
}
