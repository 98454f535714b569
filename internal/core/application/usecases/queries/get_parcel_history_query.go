package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetParcelHistoryQueryIsNotConstructed = errors.New(
	"GetParcelHistoryQuery must be created via NewGetParcelHistoryQuery constructor",
)

// GetParcelHistoryQuery retrieves the audit trail of one parcel.
type GetParcelHistoryQuery struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelHistoryQuery creates a query for a parcel's history.
func NewGetParcelHistoryQuery(parcelID kernel.UUID) (GetParcelHistoryQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetParcelHistoryQuery{}, err
	}

	return GetParcelHistoryQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelHistoryQueryIsNotConstructed)
}

// ParcelID returns the parcel whose history is requested.
func (q GetParcelHistoryQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// GetParcelHistoryQueryResponse is one audit entry in the history read
// model. ActorName falls back to "System" for entries without a user.
type GetParcelHistoryQueryResponse struct {
	ID          kernel.UUID
	OccurredAt  time.Time
	Action      string
	PriorStatus string
	NewStatus   string
	ActorName   string
}
