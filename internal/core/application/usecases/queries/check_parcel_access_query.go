package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrCheckParcelAccessQueryIsNotConstructed = errors.New(
	"CheckParcelAccessQuery must be created via NewCheckParcelAccessQuery constructor",
)

// CheckParcelAccessQuery decides whether a user may see a parcel.
// Requesters only see parcels whose ownership chain resolves to their own
// department; every other role sees everything.
type CheckParcelAccessQuery struct {
	parcelID         kernel.UUID
	role             account.Role
	userDepartmentID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckParcelAccessQuery creates an access check query for a parcel.
func NewCheckParcelAccessQuery(parcelID kernel.UUID, role account.Role, userDepartmentID *kernel.UUID) (CheckParcelAccessQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return CheckParcelAccessQuery{}, err
	}
	if err := role.Validate(); err != nil {
		return CheckParcelAccessQuery{}, err
	}
	if userDepartmentID != nil {
		if err := userDepartmentID.Validate(); err != nil {
			return CheckParcelAccessQuery{}, err
		}
	}

	return CheckParcelAccessQuery{
		parcelID:         parcelID,
		role:             role,
		userDepartmentID: userDepartmentID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckParcelAccessQuery) Validate() error {
	return q.guard.Validate(ErrCheckParcelAccessQueryIsNotConstructed)
}

// ParcelID returns the parcel under access check.
func (q CheckParcelAccessQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// Role returns the acting user's role.
func (q CheckParcelAccessQuery) Role() account.Role {
	return q.role
}

// UserDepartmentID returns the acting user's department, or nil.
func (q CheckParcelAccessQuery) UserDepartmentID() *kernel.UUID {
	return q.userDepartmentID
}

// CheckParcelAccessQueryResponse carries the access decision together with
// the parcel's resolved department, when any.
type CheckParcelAccessQueryResponse struct {
	Allowed      bool
	DepartmentID *kernel.UUID
}
