// Package deliverynote contains the DeliveryNote entity, the supplier-issued
// shipment record linking parcels to their order. One order may own many
// delivery notes (partial shipments); one delivery note owns many parcels.
package deliverynote

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// ErrDeliveryNoteIsNotConstructed is returned when a DeliveryNote instance was
// not created through the NewDeliveryNote or RestoreDeliveryNote factory functions.
var ErrDeliveryNoteIsNotConstructed = errors.New(
	"DeliveryNote must be created via NewDeliveryNote or RestoreDeliveryNote")

// DeliveryNote represents a supplier-issued shipment record against one order.
type DeliveryNote struct {
	id            kernel.UUID
	orderID       kernel.UUID
	noteNumber    string
	noteDate      *time.Time
	attachmentRef *string
	createdAt     time.Time

	guard guard.ConstructorGuard
}

// NewDeliveryNote creates a delivery note for an order.
// The supplier note number is required; the note date and the attached
// document reference are optional.
func NewDeliveryNote(
	id, orderID kernel.UUID,
	noteNumber string,
	noteDate *time.Time,
	createdAt time.Time,
) (*DeliveryNote, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}
	if noteNumber == "" {
		return nil, errs.NewValueIsRequiredError("note number")
	}

	return &DeliveryNote{
		id:         id,
		orderID:    orderID,
		noteNumber: noteNumber,
		noteDate:   noteDate,
		createdAt:  createdAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreDeliveryNote reconstructs a DeliveryNote from persistence.
func RestoreDeliveryNote(
	id, orderID kernel.UUID,
	noteNumber string,
	noteDate *time.Time,
	attachmentRef *string,
	createdAt time.Time,
) (*DeliveryNote, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &DeliveryNote{
		id:            id,
		orderID:       orderID,
		noteNumber:    noteNumber,
		noteDate:      noteDate,
		attachmentRef: attachmentRef,
		createdAt:     createdAt,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the DeliveryNote was properly constructed.
func (dn *DeliveryNote) Validate() error {
	if dn == nil {
		return ErrDeliveryNoteIsNotConstructed
	}
	return dn.guard.Validate(ErrDeliveryNoteIsNotConstructed)
}

// ID returns the delivery note's unique identifier.
func (dn *DeliveryNote) ID() kernel.UUID {
	return dn.id
}

// OrderID returns the owning order reference.
func (dn *DeliveryNote) OrderID() kernel.UUID {
	return dn.orderID
}

// NoteNumber returns the supplier-issued note number.
func (dn *DeliveryNote) NoteNumber() string {
	return dn.noteNumber
}

// NoteDate returns the date printed on the note, if known.
func (dn *DeliveryNote) NoteDate() *time.Time {
	return dn.noteDate
}

// AttachmentRef returns the storage reference of the uploaded note document, if any.
func (dn *DeliveryNote) AttachmentRef() *string {
	return dn.attachmentRef
}

// CreatedAt returns the registration timestamp.
func (dn *DeliveryNote) CreatedAt() time.Time {
	return dn.createdAt
}

// SetAttachment records the storage reference of an uploaded document.
func (dn *DeliveryNote) SetAttachment(ref string) {
	dn.attachmentRef = &ref
}
