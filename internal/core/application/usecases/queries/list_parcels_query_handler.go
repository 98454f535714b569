package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parceltrack/internal/core/domain/model/kernel"
)

// ListParcelsQueryHandler lists parcels with their ownership chain resolved
// in a single round trip. Uses direct SQL for optimal read performance.
type ListParcelsQueryHandler struct {
	db *gorm.DB
}

// NewListParcelsQueryHandler creates a handler for parcel listing queries.
func NewListParcelsQueryHandler(db *gorm.DB) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{db: db}
}

// Handle executes the parcel listing query, newest parcels first.
// The ownership joins are LEFT joins: a parcel whose delivery note or order
// is gone still shows up, with the chain columns empty.
func (h ListParcelsQueryHandler) Handle(
	ctx context.Context,
	query ListParcelsQuery,
) ([]ListParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			p.id,
			p.tracking_number,
			p.carrier,
			p.status,
			p.storage_location,
			COALESCE(dn.note_number, ''),
			COALESCE(o.number, ''),
			COALESCE(d.name, ''),
			p.created_at
		FROM parcels p
		LEFT JOIN delivery_notes dn ON dn.id = p.delivery_note_id
		LEFT JOIN orders o ON o.id = dn.order_id
		LEFT JOIN departments d ON d.id = o.department_id
		WHERE 1=1
	`
	args := make([]any, 0, 3)

	if query.Status() != nil {
		sqlQuery += " AND p.status = ?"
		args = append(args, query.Status().String())
	}
	if query.DepartmentID() != nil {
		sqlQuery += " AND o.department_id = ?"
		args = append(args, query.DepartmentID().Bytes())
	}
	if query.Search() != "" {
		sqlQuery += " AND p.tracking_number ILIKE ?"
		args = append(args, "%"+query.Search()+"%")
	}
	sqlQuery += " ORDER BY p.created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := make([]ListParcelsQueryResponse, 0)
	for rows.Next() {
		var row ListParcelsQueryResponse
		var id uuid.UUID
		var storageLocation sql.NullString

		err = rows.Scan(
			&id,
			&row.TrackingNumber,
			&row.Carrier,
			&row.Status,
			&storageLocation,
			&row.NoteNumber,
			&row.OrderNumber,
			&row.DepartmentName,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = parcelID

		if storageLocation.Valid {
			row.StorageLocation = &storageLocation.String
		}
		parcels = append(parcels, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
