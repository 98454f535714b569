// Package account contains the User entity and the Role enum.
//
// Users are reference data for the lifecycle engine: it reads them to resolve
// notification recipients and to evaluate visibility, but their lifecycle is
// managed by peripheral administration endpoints.
package account

import (
	"errors"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser factory function.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser")

// User is an actor known to the system. The home department is optional:
// unrestricted roles do not need one, a Requester without a home department
// is denied access to department-scoped entities (fail-closed).
type User struct {
	id           kernel.UUID
	email        string
	firstName    string
	lastName     string
	role         Role
	departmentID *kernel.UUID
	active       bool

	guard guard.ConstructorGuard
}

// NewUser creates a user reference.
func NewUser(
	id kernel.UUID,
	email, firstName, lastName string,
	role Role,
	departmentID *kernel.UUID,
	active bool,
) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}
	if departmentID != nil {
		if err := departmentID.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("departmentID", err)
		}
	}

	return &User{
		id:           id,
		email:        email,
		firstName:    firstName,
		lastName:     lastName,
		role:         role,
		departmentID: departmentID,
		active:       active,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the User was properly constructed.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's login email.
func (u *User) Email() string {
	return u.email
}

// FirstName returns the user's first name.
func (u *User) FirstName() string {
	return u.firstName
}

// LastName returns the user's last name.
func (u *User) LastName() string {
	return u.lastName
}

// FullName returns the display name, or the email when no name is recorded.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.firstName + " " + u.lastName)
	if name == "" {
		return u.email
	}
	return name
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// DepartmentID returns the user's home department, or nil.
func (u *User) DepartmentID() *kernel.UUID {
	return u.departmentID
}

// IsActive reports whether the account is enabled.
func (u *User) IsActive() bool {
	return u.active
}
