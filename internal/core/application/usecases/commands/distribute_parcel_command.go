package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrDistributeParcelCommandIsNotConstructed = errors.New(
	"DistributeParcelCommand must be created via NewDistributeParcelCommand constructor",
)

// DistributeParcelCommand represents a request to send a parcel out for
// distribution to its destination department.
type DistributeParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	actorID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewDistributeParcelCommand creates a command to start distributing a parcel.
func NewDistributeParcelCommand(parcelID, actorID kernel.UUID) (DistributeParcelCommand, error) {
	cmd := DistributeParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setActorID(actorID),
	); err != nil {
		return DistributeParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DistributeParcelCommand) Validate() error {
	return c.guard.Validate(ErrDistributeParcelCommandIsNotConstructed)
}

// ParcelID returns the parcel to distribute.
func (c DistributeParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// ActorID returns the user starting the distribution.
func (c DistributeParcelCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *DistributeParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *DistributeParcelCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
