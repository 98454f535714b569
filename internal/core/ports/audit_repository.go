package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/audit"
	"parceltrack/internal/core/domain/model/kernel"
)

// AuditRepository defines the persistence contract for the parcel audit log.
// The log is append only: entries are never updated or deleted, so the
// interface deliberately offers no mutation beyond Add.
type AuditRepository interface {
	// Add appends a new entry to the audit log.
	Add(ctx context.Context, entry *audit.Entry) error

	// GetAllByParcel retrieves the full history of a parcel, newest first.
	GetAllByParcel(ctx context.Context, parcelID kernel.UUID) ([]*audit.Entry, error)
}
