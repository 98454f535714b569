// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var ErrListParcelsQueryIsNotConstructed = errors.New(
	"ListParcelsQuery must be created via NewListParcelsQuery constructor",
)

// ListParcelsQuery retrieves parcels with their resolved ownership chain.
// All filters are optional and combine with AND semantics: a status filter,
// a department filter, and a free-text search over the tracking number.
type ListParcelsQuery struct {
	status       *parcel.Status
	departmentID *kernel.UUID
	search       string

	guard guard.ConstructorGuard
}

// NewListParcelsQuery creates a query to list parcels. Nil filters match
// everything.
func NewListParcelsQuery(status *parcel.Status, departmentID *kernel.UUID, search string) (ListParcelsQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListParcelsQuery{}, err
		}
	}
	if departmentID != nil {
		if err := departmentID.Validate(); err != nil {
			return ListParcelsQuery{}, err
		}
	}

	return ListParcelsQuery{
		status:       status,
		departmentID: departmentID,
		search:       search,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}

// Status returns the status filter, or nil.
func (q ListParcelsQuery) Status() *parcel.Status {
	return q.status
}

// DepartmentID returns the department filter, or nil.
func (q ListParcelsQuery) DepartmentID() *kernel.UUID {
	return q.departmentID
}

// Search returns the tracking number search term, possibly empty.
func (q ListParcelsQuery) Search() string {
	return q.search
}

// ListParcelsQueryResponse is one parcel row in the listing read model.
// Ownership fields are empty strings when the chain does not resolve.
type ListParcelsQueryResponse struct {
	ID              kernel.UUID
	TrackingNumber  string
	Carrier         string
	Status          string
	StorageLocation *string
	NoteNumber      string
	OrderNumber     string
	DepartmentName  string
	CreatedAt       time.Time
}
