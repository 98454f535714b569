package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/errs"
)

// CheckParcelAccessQueryHandler resolves a parcel's department in one round
// trip and applies the visibility policy to it.
type CheckParcelAccessQueryHandler struct {
	db     *gorm.DB
	policy services.VisibilityPolicy
}

// NewCheckParcelAccessQueryHandler creates a handler for parcel access
// checks.
func NewCheckParcelAccessQueryHandler(db *gorm.DB) CheckParcelAccessQueryHandler {
	return CheckParcelAccessQueryHandler{
		db:     db,
		policy: services.NewVisibilityPolicy(),
	}
}

// Handle executes the access check.
// Returns an ObjectNotFoundError when the parcel does not exist; a parcel
// with a broken ownership chain exists but is denied to requesters.
func (h CheckParcelAccessQueryHandler) Handle(
	ctx context.Context,
	query CheckParcelAccessQuery,
) (CheckParcelAccessQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckParcelAccessQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT o.department_id
		FROM parcels p
		LEFT JOIN delivery_notes dn ON dn.id = p.delivery_note_id
		LEFT JOIN orders o ON o.id = dn.order_id
		WHERE p.id = ?
	`, query.ParcelID().Bytes()).Row()

	var departmentID uuid.NullUUID
	if err := row.Scan(&departmentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CheckParcelAccessQueryResponse{}, errs.NewObjectNotFoundError("parcelID", query.ParcelID().String())
		}
		return CheckParcelAccessQueryResponse{}, err
	}

	var parcelDeptID *kernel.UUID
	if departmentID.Valid {
		deptID, err := kernel.UUIDFromBytes(departmentID.UUID[:])
		if err != nil {
			return CheckParcelAccessQueryResponse{}, err
		}
		parcelDeptID = &deptID
	}

	return CheckParcelAccessQueryResponse{
		Allowed:      h.policy.CanSeeParcel(query.Role(), query.UserDepartmentID(), parcelDeptID),
		DepartmentID: parcelDeptID,
	}, nil
}
