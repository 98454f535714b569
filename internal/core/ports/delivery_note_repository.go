package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/deliverynote"
	"parceltrack/internal/core/domain/model/kernel"
)

// DeliveryNoteRepository defines the persistence contract for delivery notes.
type DeliveryNoteRepository interface {
	// Add persists a new delivery note.
	Add(ctx context.Context, note *deliverynote.DeliveryNote) error

	// Update persists changes to an existing delivery note.
	Update(ctx context.Context, note *deliverynote.DeliveryNote) error

	// Get retrieves a delivery note by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*deliverynote.DeliveryNote, error)

	// GetAllByOrder retrieves every delivery note registered against an order.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*deliverynote.DeliveryNote, error)
}
