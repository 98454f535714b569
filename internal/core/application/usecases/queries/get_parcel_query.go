package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery retrieves one parcel with its destination resolved through
// the ownership chain.
type GetParcelQuery struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a query for one parcel.
func NewGetParcelQuery(parcelID kernel.UUID) (GetParcelQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetParcelQuery{}, err
	}

	return GetParcelQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// ParcelID returns the requested parcel.
func (q GetParcelQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// GetParcelQueryResponse is the detail read model of one parcel.
// DepartmentID is nil when the ownership chain is broken; the other chain
// fields are then empty.
type GetParcelQueryResponse struct {
	ID               kernel.UUID
	TrackingNumber   string
	Carrier          string
	Status           string
	StorageLocation  *string
	ReceivedAt       *time.Time
	DeliveredAt      *time.Time
	Notes            string
	CreatedAt        time.Time
	NoteNumber       string
	OrderNumber      string
	DepartmentID     *kernel.UUID
	DepartmentName   string
	DeliveryLocation string
	RequesterName    string
}
