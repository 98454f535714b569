package services

import (
	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// VisibilityPolicy decides whether a user may see a given parcel.
//
// A parcel belongs to a department through the chain
// parcel -> delivery note -> order -> department. Requesters only see
// parcels of their own department; every other role sees all parcels.
//
// Business rules:
//   - Editors, parcel managers and administrators see every parcel.
//   - A requester sees a parcel only when the parcel's resolved
//     department matches the requester's department.
//   - When the chain is broken (no delivery note, no order, or the
//     requester has no department) the decision is deny.
type VisibilityPolicy struct{}

// NewVisibilityPolicy creates a new VisibilityPolicy instance.
func NewVisibilityPolicy() VisibilityPolicy {
	return VisibilityPolicy{}
}

// CanSeeParcel reports whether a user with the given role and home
// department may see a parcel whose resolved department is
// parcelDepartmentID. Either department may be nil when unknown.
func (VisibilityPolicy) CanSeeParcel(role account.Role, userDepartmentID *kernel.UUID, parcelDepartmentID *kernel.UUID) bool {
	if role.SeesAllDepartments() {
		return true
	}
	if userDepartmentID == nil || parcelDepartmentID == nil {
		return false
	}
	return userDepartmentID.IsEqual(*parcelDepartmentID)
}

// AuthorizeParcelAccess is CanSeeParcel with an error result, for callers
// that propagate the denial instead of branching on it.
func (p VisibilityPolicy) AuthorizeParcelAccess(role account.Role, userDepartmentID *kernel.UUID, parcelID kernel.UUID, parcelDepartmentID *kernel.UUID) error {
	if p.CanSeeParcel(role, userDepartmentID, parcelDepartmentID) {
		return nil
	}
	return errs.NewAccessDeniedError(role.String(), parcelID.String())
}
