package errs

import (
	"errors"
	"fmt"
)

// ErrAccessDenied is the sentinel error for all AccessDeniedError instances.
// It classifies failures of the department-scoped visibility check.
var ErrAccessDenied = errors.New("access denied")

// AccessDeniedError indicates that an actor is not allowed to observe or act
// on the referenced entity. Role carries the actor's role and EntityID the
// target that was refused.
type AccessDeniedError struct {
	Role     string
	EntityID any
	Cause    error
}

// NewAccessDeniedError creates an AccessDeniedError without an underlying cause.
func NewAccessDeniedError(role string, entityID any) *AccessDeniedError {
	return &AccessDeniedError{
		Role:     role,
		EntityID: entityID,
	}
}

// NewAccessDeniedErrorWithCause creates an AccessDeniedError wrapping an
// underlying cause.
func NewAccessDeniedErrorWithCause(role string, entityID any, cause error) *AccessDeniedError {
	return &AccessDeniedError{
		Role:     role,
		EntityID: entityID,
		Cause:    cause,
	}
}

func (e *AccessDeniedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: role %s may not access %s (cause: %s)",
			ErrAccessDenied, e.Role, e.EntityID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: role %s may not access %s", ErrAccessDenied, e.Role, e.EntityID))
}

func (e *AccessDeniedError) Unwrap() error {
	return ErrAccessDenied
}
