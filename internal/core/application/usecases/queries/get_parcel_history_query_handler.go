package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parceltrack/internal/core/domain/model/audit"
	"parceltrack/internal/core/domain/model/kernel"
)

// GetParcelHistoryQueryHandler retrieves the audit trail of a parcel,
// newest entries first.
type GetParcelHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelHistoryQueryHandler creates a handler for the history query.
func NewGetParcelHistoryQueryHandler(db *gorm.DB) GetParcelHistoryQueryHandler {
	return GetParcelHistoryQueryHandler{db: db}
}

// Handle executes the history query. Entries whose user is gone or was never
// set are attributed to the system actor.
func (h GetParcelHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetParcelHistoryQuery,
) ([]GetParcelHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.occurred_at,
			a.action,
			a.prior_status,
			a.new_status,
			COALESCE(NULLIF(TRIM(CONCAT(u.first_name, ' ', u.last_name)), ''), u.email, ?)
		FROM audit_entries a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.parcel_id = ?
		ORDER BY a.occurred_at DESC
	`, audit.SystemActor, query.ParcelID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetParcelHistoryQueryResponse, 0)
	for rows.Next() {
		var entry GetParcelHistoryQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&entry.OccurredAt,
			&entry.Action,
			&entry.PriorStatus,
			&entry.NewStatus,
			&entry.ActorName,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = entryID
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
