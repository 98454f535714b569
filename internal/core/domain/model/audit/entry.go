// Package audit contains the append-only audit trail of parcel lifecycle events.
//
// Entries record who changed what and when, including the prior and new status
// of every transition. Entries are immutable once created: the lifecycle engine
// only ever appends and reads, never updates or deletes.
package audit

import (
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

// ErrEntryIsNotConstructed is returned when an Entry instance was not created
// through the NewEntry factory function.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry")

// SystemActor is the attribution used for entries created without an acting
// user, e.g. by scheduled jobs.
const SystemActor = "System"

// Entry is one immutable audit record of a parcel lifecycle event.
type Entry struct {
	id          kernel.UUID
	parcelID    kernel.UUID
	userID      *kernel.UUID
	occurredAt  time.Time
	action      string
	priorStatus parcel.Status
	newStatus   parcel.Status

	guard guard.ConstructorGuard
}

// NewEntry creates an audit entry for one parcel status transition.
// A nil userID attributes the entry to the system.
func NewEntry(
	id, parcelID kernel.UUID,
	userID *kernel.UUID,
	occurredAt time.Time,
	action string,
	priorStatus, newStatus parcel.Status,
) (*Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Entry{
		id:          id,
		parcelID:    parcelID,
		userID:      userID,
		occurredAt:  occurredAt,
		action:      action,
		priorStatus: priorStatus,
		newStatus:   newStatus,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Entry was properly constructed.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// ParcelID returns the parcel the entry belongs to.
func (e *Entry) ParcelID() kernel.UUID {
	return e.parcelID
}

// UserID returns the acting user, or nil for system-initiated entries.
func (e *Entry) UserID() *kernel.UUID {
	return e.userID
}

// OccurredAt returns when the transition happened.
func (e *Entry) OccurredAt() time.Time {
	return e.occurredAt
}

// Action returns the free-text description of the event.
func (e *Entry) Action() string {
	return e.action
}

// PriorStatus returns the status before the transition.
func (e *Entry) PriorStatus() parcel.Status {
	return e.priorStatus
}

// NewStatus returns the status after the transition.
func (e *Entry) NewStatus() parcel.Status {
	return e.newStatus
}

// Canonical action texts for the five lifecycle operations.
// Kept aligned with the wording operators are used to.

// ReceptionAction is the action text recorded when a parcel is received.
func ReceptionAction() string {
	return "Reception du colis"
}

// StatusChangeAction is the generic action text for a status change.
func StatusChangeAction() string {
	return "Changement de statut"
}

// DeliveryAction is the action text recorded on delivery, with the optional
// hand-over location embedded.
func DeliveryAction(location string) string {
	if location == "" {
		return "Livraison"
	}
	return fmt.Sprintf("Livraison a %s", location)
}

// ProblemAction embeds the operator's description of the anomaly.
func ProblemAction(description string) string {
	return fmt.Sprintf("Probleme: %s", description)
}

// ResolutionAction is the action text recorded when a problem is resolved.
func ResolutionAction() string {
	return "Resolution du probleme"
}
