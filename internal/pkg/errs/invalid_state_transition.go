package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidStateTransition is the sentinel error for all InvalidStateTransitionError
// instances. It classifies domain errors where a parcel lifecycle operation was
// attempted from a status that does not allow it.
var ErrInvalidStateTransition = errors.New("invalid state transition")

// InvalidStateTransitionError indicates that a parcel could not move from its
// current status to the requested one. From holds the actual current status,
// To the requested target status.
type InvalidStateTransitionError struct {
	ParcelID any
	From     string
	To       string
	Cause    error
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError without
// an underlying cause.
func NewInvalidStateTransitionError(parcelID any, from, to string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{
		ParcelID: parcelID,
		From:     from,
		To:       to,
	}
}

// NewInvalidStateTransitionErrorWithCause creates an InvalidStateTransitionError
// wrapping an underlying cause.
func NewInvalidStateTransitionErrorWithCause(parcelID any, from, to string, cause error) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{
		ParcelID: parcelID,
		From:     from,
		To:       to,
		Cause:    cause,
	}
}

func (e *InvalidStateTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: parcel %s cannot go from %s to %s (cause: %s)",
			ErrInvalidStateTransition, e.ParcelID, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: parcel %s cannot go from %s to %s",
		ErrInvalidStateTransition, e.ParcelID, e.From, e.To))
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}
