package parcel

import (
	"errors"
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
// through the NewParcel or RestoreParcel factory functions.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")

// ErrParcelNotInProblemStatus is the cause attached to the domain error returned
// by ResolveProblem when the parcel is not currently flagged with a problem.
var ErrParcelNotInProblemStatus = errors.New("parcel is not in problem status")

// Parcel represents one physical package tracked under a delivery note.
// It is the aggregate root of the lifecycle engine and owns the status
// state machine together with the fields coupled to it.
//
// Parcel maintains these invariants:
//   - Must have a valid unique identifier
//   - The storage location is set on reception and cleared on delivery
//   - The reception timestamp is set when the parcel is received
//   - The delivery timestamp is set if and only if the parcel is delivered
//   - Problem resolution is only possible from the Problem status
//
// The deliverynote reference is nullable only transiently during creation;
// a persisted parcel always belongs to a delivery note, but the engine must
// tolerate parcels whose owner chain no longer resolves (cascading deletes
// are administrative operations outside the engine).
type Parcel struct {
	id              kernel.UUID
	deliveryNoteID  *kernel.UUID
	trackingNumber  string
	carrier         string
	status          Status
	storageLocation *string
	receivedAt      *time.Time
	deliveredAt     *time.Time
	notes           string
	createdAt       time.Time

	guard guard.ConstructorGuard
}

// NewParcel creates a new Parcel in the Awaited status.
// Parcels are created when a delivery note is registered, before the
// physical package arrives.
//
// The tracking number may be empty (the supplier does not always provide
// one up front), but the parcel ID must be valid and the delivery note
// reference, when provided, must be valid too.
func NewParcel(id kernel.UUID, deliveryNoteID *kernel.UUID, trackingNumber, carrier, notes string) (*Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if deliveryNoteID != nil {
		if err := deliveryNoteID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Parcel{
		id:             id,
		deliveryNoteID: deliveryNoteID,
		trackingNumber: trackingNumber,
		carrier:        carrier,
		status:         Awaited,
		notes:          notes,
		createdAt:      time.Now().UTC(),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// RestoreParcel reconstructs a Parcel from persistence without applying
// creation defaults. The stored status must be valid.
func RestoreParcel(
	id kernel.UUID,
	deliveryNoteID *kernel.UUID,
	trackingNumber, carrier string,
	status Status,
	storageLocation *string,
	receivedAt, deliveredAt *time.Time,
	notes string,
	createdAt time.Time,
) (*Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Parcel{
		id:              id,
		deliveryNoteID:  deliveryNoteID,
		trackingNumber:  trackingNumber,
		carrier:         carrier,
		status:          status,
		storageLocation: storageLocation,
		receivedAt:      receivedAt,
		deliveredAt:     deliveredAt,
		notes:           notes,
		createdAt:       createdAt,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Parcel instance was properly constructed through one
// of the factory functions. This prevents bypassing validation by directly
// instantiating the struct.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// DeliveryNoteID returns the owning delivery note reference.
// Returns nil only for parcels still being assembled during creation.
func (p *Parcel) DeliveryNoteID() *kernel.UUID {
	return p.deliveryNoteID
}

// TrackingNumber returns the carrier tracking number (may be empty).
func (p *Parcel) TrackingNumber() string {
	return p.trackingNumber
}

// Carrier returns the carrier name (may be empty).
func (p *Parcel) Carrier() string {
	return p.carrier
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// StorageLocation returns where the parcel is currently stored.
// Set on reception, cleared on delivery.
func (p *Parcel) StorageLocation() *string {
	return p.storageLocation
}

// ReceivedAt returns the reception timestamp, or nil if the parcel has not
// been received yet.
func (p *Parcel) ReceivedAt() *time.Time {
	return p.receivedAt
}

// DeliveredAt returns the delivery timestamp. It is non-nil if and only if
// the parcel is in the Delivered status.
func (p *Parcel) DeliveredAt() *time.Time {
	return p.deliveredAt
}

// Notes returns the free-text notes attached to the parcel.
func (p *Parcel) Notes() string {
	return p.notes
}

// CreatedAt returns when the parcel record was created.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// Label returns a short human-readable identifier for the parcel, preferring
// the carrier tracking number over the raw ID. Used in notification titles
// and audit texts.
func (p *Parcel) Label() string {
	if p.trackingNumber != "" {
		return p.trackingNumber
	}
	return "#" + p.id.String()
}

// Receive marks the parcel as arrived and stored at the given location.
// Sets the status to Received, records the storage location and the
// reception timestamp. The location is required.
//
// The baseline engine applies this unconditionally regardless of the prior
// status; strict precondition checking is the handler's responsibility via
// Status.ValidateTransitionTo.
func (p *Parcel) Receive(location string, at time.Time) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}

	p.status = Received
	p.storageLocation = &location
	p.receivedAt = &at
	p.deliveredAt = nil
	return nil
}

// StartDistribution marks the parcel as being routed to its destination
// department. The storage location is neither cleared nor required.
func (p *Parcel) StartDistribution() {
	p.status = InDistribution
	p.deliveredAt = nil
}

// Deliver marks the parcel as handed over to its recipient.
// Sets the status to Delivered, clears the storage location and records
// the delivery timestamp. Delivered is a terminal state.
func (p *Parcel) Deliver(at time.Time) {
	p.status = Delivered
	p.storageLocation = nil
	p.deliveredAt = &at
}

// FlagProblem puts the parcel into the Problem side-channel state.
// The description is recorded by the audit log, not on the parcel itself.
func (p *Parcel) FlagProblem() {
	p.status = Problem
}

// ResolveProblem puts a problem parcel back into the given active status.
//
// Precondition, strictly enforced even in the permissive engine: the parcel
// MUST currently be in the Problem status. Otherwise a domain error wrapping
// errs.ErrInvalidStateTransition is returned and nothing is mutated.
//
// The target status is expected to be one of Awaited, Received or
// InDistribution; restricting the offered choices is the caller's contract,
// the engine only rejects values that are not valid statuses at all.
func (p *Parcel) ResolveProblem(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if p.status != Problem {
		return errs.NewInvalidStateTransitionErrorWithCause(
			p.id.String(), p.status.String(), newStatus.String(), ErrParcelNotInProblemStatus)
	}

	p.status = newStatus
	return nil
}

// AmendDetails updates the administrative fields of the parcel (tracking
// number, carrier, notes). Lifecycle fields are not touched; they are only
// mutated through the five lifecycle operations.
func (p *Parcel) AmendDetails(trackingNumber, carrier, notes string) {
	p.trackingNumber = trackingNumber
	p.carrier = carrier
	p.notes = notes
}

// AttachToDeliveryNote sets the owning delivery note on a parcel created
// ahead of its note. Returns an error if the reference is invalid.
func (p *Parcel) AttachToDeliveryNote(deliveryNoteID kernel.UUID) error {
	if err := deliveryNoteID.Validate(); err != nil {
		return fmt.Errorf("delivery note reference: %w", err)
	}
	p.deliveryNoteID = &deliveryNoteID
	return nil
}
