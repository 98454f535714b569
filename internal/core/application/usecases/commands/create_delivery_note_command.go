package commands

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrCreateDeliveryNoteCommandIsNotConstructed = errors.New(
	"CreateDeliveryNoteCommand must be created via NewCreateDeliveryNoteCommand constructor",
)

// NewParcelSpec describes one parcel to register under a delivery note.
// The tracking number and carrier are optional; suppliers do not always
// provide them up front.
type NewParcelSpec struct {
	ID             kernel.UUID
	TrackingNumber string
	Carrier        string
	Notes          string
}

// CreateDeliveryNoteCommand represents a request to register a delivery note
// against an order, together with the parcels announced on it. Registration
// also moves the order into the InProgress status.
type CreateDeliveryNoteCommand struct { //nolint:recvcheck //using for validation
	noteID     kernel.UUID
	orderID    kernel.UUID
	noteNumber string
	noteDate   *time.Time
	parcels    []NewParcelSpec

	guard guard.ConstructorGuard
}

// NewCreateDeliveryNoteCommand creates a command to register a delivery note.
// At least one parcel must be announced: a note without parcels tracks
// nothing.
func NewCreateDeliveryNoteCommand(
	noteID, orderID kernel.UUID,
	noteNumber string,
	noteDate *time.Time,
	parcels []NewParcelSpec,
) (CreateDeliveryNoteCommand, error) {
	cmd := CreateDeliveryNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNoteID(noteID),
		cmd.setOrderID(orderID),
		cmd.setNoteNumber(noteNumber),
		cmd.setParcels(parcels),
	); err != nil {
		return CreateDeliveryNoteCommand{}, err
	}

	cmd.noteDate = noteDate
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryNoteCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryNoteCommandIsNotConstructed)
}

// NoteID returns the unique identifier for the delivery note.
func (c CreateDeliveryNoteCommand) NoteID() kernel.UUID {
	return c.noteID
}

// OrderID returns the order the note is registered against.
func (c CreateDeliveryNoteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NoteNumber returns the supplier's note number.
func (c CreateDeliveryNoteCommand) NoteNumber() string {
	return c.noteNumber
}

// NoteDate returns the date printed on the note, or nil.
func (c CreateDeliveryNoteCommand) NoteDate() *time.Time {
	return c.noteDate
}

// Parcels returns the parcels announced on the note.
func (c CreateDeliveryNoteCommand) Parcels() []NewParcelSpec {
	return c.parcels
}

func (c *CreateDeliveryNoteCommand) setNoteID(noteID kernel.UUID) error {
	if err := noteID.Validate(); err != nil {
		return err
	}

	c.noteID = noteID
	return nil
}

func (c *CreateDeliveryNoteCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}

	c.orderID = orderID
	return nil
}

func (c *CreateDeliveryNoteCommand) setNoteNumber(noteNumber string) error {
	if noteNumber == "" {
		return errs.NewValueIsRequiredError("note number")
	}

	c.noteNumber = noteNumber
	return nil
}

func (c *CreateDeliveryNoteCommand) setParcels(parcels []NewParcelSpec) error {
	if len(parcels) == 0 {
		return errs.NewValueIsRequiredError("parcels")
	}
	for _, spec := range parcels {
		if err := spec.ID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("parcels", err)
		}
	}

	c.parcels = parcels
	return nil
}
