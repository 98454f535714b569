package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrFlagParcelProblemCommandIsNotConstructed = errors.New(
	"FlagParcelProblemCommand must be created via NewFlagParcelProblemCommand constructor",
)

// FlagParcelProblemCommand represents a request to flag an anomaly on a
// parcel. The description ends up in the audit log and in the administrator
// alerts, so it is required.
type FlagParcelProblemCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	actorID     kernel.UUID
	description string

	guard guard.ConstructorGuard
}

// NewFlagParcelProblemCommand creates a command to flag a problem on a parcel.
func NewFlagParcelProblemCommand(parcelID, actorID kernel.UUID, description string) (FlagParcelProblemCommand, error) {
	cmd := FlagParcelProblemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setActorID(actorID),
		cmd.setDescription(description),
	); err != nil {
		return FlagParcelProblemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FlagParcelProblemCommand) Validate() error {
	return c.guard.Validate(ErrFlagParcelProblemCommandIsNotConstructed)
}

// ParcelID returns the parcel to flag.
func (c FlagParcelProblemCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// ActorID returns the user flagging the problem.
func (c FlagParcelProblemCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Description returns the operator's description of the anomaly.
func (c FlagParcelProblemCommand) Description() string {
	return c.description
}

func (c *FlagParcelProblemCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *FlagParcelProblemCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *FlagParcelProblemCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.description = description
	return nil
}
