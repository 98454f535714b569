package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parceltrack/internal/core/domain/model/audit"
	"parceltrack/internal/core/domain/model/kernel"
)

// GetRecentActivityQueryHandler retrieves the latest audit entries across
// all parcels for the dashboard feed.
type GetRecentActivityQueryHandler struct {
	db *gorm.DB
}

// NewGetRecentActivityQueryHandler creates a handler for the activity feed
// query.
func NewGetRecentActivityQueryHandler(db *gorm.DB) GetRecentActivityQueryHandler {
	return GetRecentActivityQueryHandler{db: db}
}

// Handle executes the activity feed query, newest entries first.
func (h GetRecentActivityQueryHandler) Handle(
	ctx context.Context,
	query GetRecentActivityQuery,
) ([]GetRecentActivityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			a.id,
			a.parcel_id,
			COALESCE(p.tracking_number, ''),
			a.occurred_at,
			a.action,
			a.prior_status,
			a.new_status,
			COALESCE(NULLIF(TRIM(CONCAT(u.first_name, ' ', u.last_name)), ''), u.email, ?)
		FROM audit_entries a
		LEFT JOIN users u ON u.id = a.user_id
		LEFT JOIN parcels p ON p.id = a.parcel_id
	`
	args := []any{audit.SystemActor}

	if query.DepartmentID() != nil {
		sqlQuery += `
		LEFT JOIN delivery_notes dn ON dn.id = p.delivery_note_id
		LEFT JOIN orders o ON o.id = dn.order_id
		WHERE o.department_id = ?
		`
		args = append(args, query.DepartmentID().Bytes())
	}

	sqlQuery += " ORDER BY a.occurred_at DESC LIMIT ?"
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetRecentActivityQueryResponse, 0, query.Limit())
	for rows.Next() {
		var entry GetRecentActivityQueryResponse
		var id, parcelID uuid.UUID

		err = rows.Scan(
			&id,
			&parcelID,
			&entry.TrackingNumber,
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

		pID, idErr := kernel.UUIDFromBytes(parcelID[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ParcelID = pID
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
