package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// GetParcelQueryHandler retrieves the detail read model of one parcel.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for the parcel detail query.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle executes the parcel detail query.
// Returns an ObjectNotFoundError when the parcel does not exist.
func (h GetParcelQueryHandler) Handle(
	ctx context.Context,
	query GetParcelQuery,
) (GetParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.tracking_number,
			p.carrier,
			p.status,
			p.storage_location,
			p.received_at,
			p.delivered_at,
			p.notes,
			p.created_at,
			COALESCE(dn.note_number, ''),
			COALESCE(o.number, ''),
			o.department_id,
			COALESCE(d.name, ''),
			COALESCE(d.delivery_location, ''),
			COALESCE(NULLIF(TRIM(CONCAT(u.first_name, ' ', u.last_name)), ''), u.email, '')
		FROM parcels p
		LEFT JOIN delivery_notes dn ON dn.id = p.delivery_note_id
		LEFT JOIN orders o ON o.id = dn.order_id
		LEFT JOIN departments d ON d.id = o.department_id
		LEFT JOIN users u ON u.id = o.requester_id
		WHERE p.id = ?
	`, query.ParcelID().Bytes()).Row()

	var resp GetParcelQueryResponse
	var id uuid.UUID
	var storageLocation sql.NullString
	var receivedAt, deliveredAt sql.NullTime
	var departmentID uuid.NullUUID

	err := row.Scan(
		&id,
		&resp.TrackingNumber,
		&resp.Carrier,
		&resp.Status,
		&storageLocation,
		&receivedAt,
		&deliveredAt,
		&resp.Notes,
		&resp.CreatedAt,
		&resp.NoteNumber,
		&resp.OrderNumber,
		&departmentID,
		&resp.DepartmentName,
		&resp.DeliveryLocation,
		&resp.RequesterName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetParcelQueryResponse{}, errs.NewObjectNotFoundError("parcelID", query.ParcelID().String())
		}
		return GetParcelQueryResponse{}, err
	}

	parcelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetParcelQueryResponse{}, err
	}
	resp.ID = parcelID

	if storageLocation.Valid {
		resp.StorageLocation = &storageLocation.String
	}
	if receivedAt.Valid {
		resp.ReceivedAt = &receivedAt.Time
	}
	if deliveredAt.Valid {
		resp.DeliveredAt = &deliveredAt.Time
	}
	if departmentID.Valid {
		deptID, derr := kernel.UUIDFromBytes(departmentID.UUID[:])
		if derr != nil {
			return GetParcelQueryResponse{}, derr
		}
		resp.DepartmentID = &deptID
	}

	return resp, nil
}
