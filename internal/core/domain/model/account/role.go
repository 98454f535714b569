package account

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// Role determines what a user may see and do.
//
// Two visibility tiers exist: the unrestricted roles (Editor, ParcelManager,
// Administrator) see every parcel and order regardless of department, while
// Requester only sees entities whose resolved department matches the user's
// home department.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleRequester consults the orders and parcels of their own department.
	RoleRequester

	// RoleEditor creates and maintains orders and suppliers.
	RoleEditor

	// RoleParcelManager handles the physical parcels: reception,
	// distribution, delivery and problem handling.
	RoleParcelManager

	// RoleAdministrator has full access, including user management, and
	// receives problem alerts.
	RoleAdministrator
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:       "unknown",
		RoleRequester:     "requester",
		RoleEditor:        "editor",
		RoleParcelManager: "parcel_manager",
		RoleAdministrator: "administrator",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleRequester:     "requester",
		RoleEditor:        "editor",
		RoleParcelManager: "parcel_manager",
		RoleAdministrator: "administrator",
	}
}

// RoleFromString parses a Role from its external string representation.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the external name of the role.
// Safe to call on any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// SeesAllDepartments reports whether the role belongs to the unrestricted
// visibility tier.
func (r Role) SeesAllDepartments() bool {
	return r == RoleEditor || r == RoleParcelManager || r == RoleAdministrator
}

// CanManageParcels reports whether the role may invoke parcel lifecycle
// operations (receive, distribute, deliver, flag and resolve problems).
func (r Role) CanManageParcels() bool {
	return r == RoleParcelManager || r == RoleAdministrator
}

// IsAdministrator reports whether the role receives problem alerts and may
// manage reference data and users.
func (r Role) IsAdministrator() bool {
	return r == RoleAdministrator
}
