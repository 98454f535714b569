// Package ports defines repository interfaces for the parcel tracking domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The parcel must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	// The parcel must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetAllByDeliveryNote retrieves every parcel attached to a delivery note.
	GetAllByDeliveryNote(ctx context.Context, deliveryNoteID kernel.UUID) ([]*parcel.Parcel, error)

	// GetAllAwaitedBefore retrieves parcels still in the Awaited status that
	// were created before the given cutoff. Used by the stale parcel job.
	GetAllAwaitedBefore(ctx context.Context, cutoff time.Time) ([]*parcel.Parcel, error)
}
