package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrMarkAllNotificationsReadCommandIsNotConstructed = errors.New(
	"MarkAllNotificationsReadCommand must be created via NewMarkAllNotificationsReadCommand constructor",
)

// MarkAllNotificationsReadCommand represents a request to mark every unread
// notification of the actor as read.
type MarkAllNotificationsReadCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkAllNotificationsReadCommand creates a command to mark all of a
// user's notifications read.
func NewMarkAllNotificationsReadCommand(actorID kernel.UUID) (MarkAllNotificationsReadCommand, error) {
	cmd := MarkAllNotificationsReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setActorID(actorID); err != nil {
		return MarkAllNotificationsReadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAllNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkAllNotificationsReadCommandIsNotConstructed)
}

// ActorID returns the user whose notifications are marked read.
func (c MarkAllNotificationsReadCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *MarkAllNotificationsReadCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
