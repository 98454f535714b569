package commands

import (
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
)

// validateStrictTransition enforces the status state machine for handlers
// running with strict transitions enabled. It promotes the raw status error
// into a transition error carrying the parcel identity.
func validateStrictTransition(p *parcel.Parcel, target parcel.Status) error {
	if err := p.Status().ValidateTransitionTo(target); err != nil {
		return errs.NewInvalidStateTransitionErrorWithCause(
			p.ID().String(), p.Status().String(), target.String(), err)
	}
	return nil
}
