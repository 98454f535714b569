package commands

import (
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrResolveParcelProblemCommandIsNotConstructed = errors.New(
	"ResolveParcelProblemCommand must be created via NewResolveParcelProblemCommand constructor",
)

// ResolveParcelProblemCommand represents a request to close a problem on a
// parcel and put it back into one of the active statuses.
type ResolveParcelProblemCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	actorID   kernel.UUID
	newStatus parcel.Status

	guard guard.ConstructorGuard
}

// NewResolveParcelProblemCommand creates a command to resolve a parcel
// problem. The target status must be Awaited, Received or InDistribution;
// resolving straight into Delivered or Problem is not offered.
func NewResolveParcelProblemCommand(parcelID, actorID kernel.UUID, newStatus parcel.Status) (ResolveParcelProblemCommand, error) {
	cmd := ResolveParcelProblemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setActorID(actorID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return ResolveParcelProblemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveParcelProblemCommand) Validate() error {
	return c.guard.Validate(ErrResolveParcelProblemCommandIsNotConstructed)
}

// ParcelID returns the parcel whose problem is resolved.
func (c ResolveParcelProblemCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// ActorID returns the user resolving the problem.
func (c ResolveParcelProblemCommand) ActorID() kernel.UUID {
	return c.actorID
}

// NewStatus returns the active status the parcel goes back to.
func (c ResolveParcelProblemCommand) NewStatus() parcel.Status {
	return c.newStatus
}

func (c *ResolveParcelProblemCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *ResolveParcelProblemCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *ResolveParcelProblemCommand) setNewStatus(newStatus parcel.Status) error {
	if !newStatus.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"newStatus",
			fmt.Errorf("%s is not an active status", newStatus),
		)
	}

	c.newStatus = newStatus
	return nil
}
