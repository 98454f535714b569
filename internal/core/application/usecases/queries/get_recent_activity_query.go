package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrGetRecentActivityQueryIsNotConstructed = errors.New(
	"GetRecentActivityQuery must be created via NewGetRecentActivityQuery constructor",
)

const (
	minActivityLimit = 1
	maxActivityLimit = 100
)

// GetRecentActivityQuery retrieves the latest audit entries across all
// parcels, optionally restricted to one department's parcels. Feeds the
// dashboard activity feed.
type GetRecentActivityQuery struct {
	limit        int
	departmentID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRecentActivityQuery creates a query for the activity feed.
// The limit must be between 1 and 100.
func NewGetRecentActivityQuery(limit int, departmentID *kernel.UUID) (GetRecentActivityQuery, error) {
	if limit < minActivityLimit || limit > maxActivityLimit {
		return GetRecentActivityQuery{}, errs.NewValueIsOutOfRangeError(
			"limit", limit, minActivityLimit, maxActivityLimit)
	}
	if departmentID != nil {
		if err := departmentID.Validate(); err != nil {
			return GetRecentActivityQuery{}, err
		}
	}

	return GetRecentActivityQuery{
		limit:        limit,
		departmentID: departmentID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRecentActivityQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentActivityQueryIsNotConstructed)
}

// Limit returns the maximum number of entries to return.
func (q GetRecentActivityQuery) Limit() int {
	return q.limit
}

// DepartmentID returns the department filter, or nil.
func (q GetRecentActivityQuery) DepartmentID() *kernel.UUID {
	return q.departmentID
}

// GetRecentActivityQueryResponse is one entry in the activity feed.
type GetRecentActivityQueryResponse struct {
	ID             kernel.UUID
	ParcelID       kernel.UUID
	TrackingNumber string
	OccurredAt     time.Time
	Action         string
	PriorStatus    string
	NewStatus      string
	ActorName      string
}
