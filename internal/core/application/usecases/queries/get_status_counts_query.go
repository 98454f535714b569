package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetStatusCountsQueryIsNotConstructed = errors.New(
	"GetStatusCountsQuery must be created via NewGetStatusCountsQuery constructor",
)

// GetStatusCountsQuery retrieves the number of parcels per status for the
// dashboard tiles, either globally or restricted to one department's
// parcels. Every valid status appears in the response, zero counts
// included.
type GetStatusCountsQuery struct {
	departmentID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStatusCountsQuery creates a query for the per-status parcel counts.
// A nil departmentID counts across all departments.
func NewGetStatusCountsQuery(departmentID *kernel.UUID) (GetStatusCountsQuery, error) {
	if departmentID != nil {
		if err := departmentID.Validate(); err != nil {
			return GetStatusCountsQuery{}, err
		}
	}

	return GetStatusCountsQuery{
		departmentID: departmentID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStatusCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusCountsQueryIsNotConstructed)
}

// DepartmentID returns the department filter, or nil.
func (q GetStatusCountsQuery) DepartmentID() *kernel.UUID {
	return q.departmentID
}

// GetStatusCountsQueryResponse maps status names to parcel counts.
type GetStatusCountsQueryResponse struct {
	Counts map[string]int64
}
