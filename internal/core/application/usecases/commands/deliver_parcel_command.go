package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrDeliverParcelCommandIsNotConstructed = errors.New(
	"DeliverParcelCommand must be created via NewDeliverParcelCommand constructor",
)

// DeliverParcelCommand represents a request to mark a parcel as handed over
// to its recipient. The destination is the free-text hand-over target; when
// empty the handler resolves the destination department through the owner
// chain.
type DeliverParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	actorID     kernel.UUID
	destination string

	guard guard.ConstructorGuard
}

// NewDeliverParcelCommand creates a command to deliver a parcel.
func NewDeliverParcelCommand(parcelID, actorID kernel.UUID, destination string) (DeliverParcelCommand, error) {
	cmd := DeliverParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setActorID(actorID),
	); err != nil {
		return DeliverParcelCommand{}, err
	}

	cmd.destination = destination
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverParcelCommand) Validate() error {
	return c.guard.Validate(ErrDeliverParcelCommandIsNotConstructed)
}

// ParcelID returns the parcel to deliver.
func (c DeliverParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// ActorID returns the user performing the delivery.
func (c DeliverParcelCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Destination returns the hand-over target, possibly empty.
func (c DeliverParcelCommand) Destination() string {
	return c.destination
}

func (c *DeliverParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *DeliverParcelCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
