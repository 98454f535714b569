package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrReceiveParcelCommandIsNotConstructed = errors.New(
	"ReceiveParcelCommand must be created via NewReceiveParcelCommand constructor",
)

// ReceiveParcelCommand represents a request to mark a parcel as physically
// arrived and stored at a location.
type ReceiveParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	actorID  kernel.UUID
	location string

	guard guard.ConstructorGuard
}

// NewReceiveParcelCommand creates a command to receive a parcel.
// The storage location is required; a parcel cannot be received nowhere.
func NewReceiveParcelCommand(parcelID, actorID kernel.UUID, location string) (ReceiveParcelCommand, error) {
	cmd := ReceiveParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setActorID(actorID),
		cmd.setLocation(location),
	); err != nil {
		return ReceiveParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveParcelCommand) Validate() error {
	return c.guard.Validate(ErrReceiveParcelCommandIsNotConstructed)
}

// ParcelID returns the parcel to receive.
func (c ReceiveParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// ActorID returns the user performing the reception.
func (c ReceiveParcelCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Location returns where the parcel is stored.
func (c ReceiveParcelCommand) Location() string {
	return c.location
}

func (c *ReceiveParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *ReceiveParcelCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *ReceiveParcelCommand) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}

	c.location = location
	return nil
}
