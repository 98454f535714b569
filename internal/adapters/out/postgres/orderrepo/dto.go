// Package orderrepo provides persistence for purchase orders.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number             string     `gorm:"index"`
	SupplierID         uuid.UUID  `gorm:"type:uuid;index"`
	DepartmentID       uuid.UUID  `gorm:"type:uuid;index"`
	RequesterID        *uuid.UUID `gorm:"type:uuid;index"`
	Status             string     `gorm:"index"`
	CreatedAt          time.Time
	ExpectedDeliveryAt *time.Time
	AttachmentRef      *string
	Notes              string
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	var requesterID *uuid.UUID
	if id := o.RequesterID(); id != nil {
		raw := id.Bytes()
		requesterID = &raw
	}

	return OrderDTO{
		ID:                 o.ID().Bytes(),
		Number:             o.Number(),
		SupplierID:         o.SupplierID().Bytes(),
		DepartmentID:       o.DepartmentID().Bytes(),
		RequesterID:        requesterID,
		Status:             o.Status().String(),
		CreatedAt:          o.CreatedAt(),
		ExpectedDeliveryAt: o.ExpectedDeliveryAt(),
		AttachmentRef:      o.AttachmentRef(),
		Notes:              o.Notes(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	departmentID, err := kernel.UUIDFromBytes(dto.DepartmentID[:])
	if err != nil {
		return nil, err
	}

	var requesterID *kernel.UUID
	if dto.RequesterID != nil {
		rID, reqErr := kernel.UUIDFromBytes((*dto.RequesterID)[:])
		if reqErr != nil {
			return nil, reqErr
		}
		requesterID = &rID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		supplierID,
		departmentID,
		requesterID,
		status,
		dto.CreatedAt,
		dto.ExpectedDeliveryAt,
		dto.AttachmentRef,
		dto.Notes,
	)
}
