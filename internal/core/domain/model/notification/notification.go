// Package notification contains the Notification entity.
//
// Notifications are created by the dispatcher when parcel lifecycle
// transitions occur, and mutated only by the read/read-all actions and the
// retention sweep. They carry an optional deep-link to the entity they
// describe so the web client can jump straight to it.
package notification

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// ErrNotificationIsNotConstructed is returned when a Notification instance was
// not created through the NewNotification or RestoreNotification factory functions.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewNotification or RestoreNotification")

// Notification is one message addressed to one user. Unread by default.
type Notification struct {
	id          kernel.UUID
	recipientID kernel.UUID
	title       string
	message     string
	link        *string
	read        bool
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewNotification creates an unread notification for a recipient.
func NewNotification(
	id, recipientID kernel.UUID,
	title, message string,
	link *string,
	createdAt time.Time,
) (*Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := recipientID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("recipientID", err)
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}

	return &Notification{
		id:          id,
		recipientID: recipientID,
		title:       title,
		message:     message,
		link:        link,
		read:        false,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreNotification reconstructs a Notification from persistence.
func RestoreNotification(
	id, recipientID kernel.UUID,
	title, message string,
	link *string,
	read bool,
	createdAt time.Time,
) (*Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Notification{
		id:          id,
		recipientID: recipientID,
		title:       title,
		message:     message,
		link:        link,
		read:        read,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Notification was properly constructed.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// RecipientID returns the addressed user.
func (n *Notification) RecipientID() kernel.UUID {
	return n.recipientID
}

// Title returns the short headline, e.g. "Colis CHRO-FR-789456123".
func (n *Notification) Title() string {
	return n.title
}

// Message returns the body text.
func (n *Notification) Message() string {
	return n.message
}

// Link returns the optional deep-link to the described entity.
func (n *Notification) Link() *string {
	return n.link
}

// IsRead reports whether the recipient has seen the notification.
func (n *Notification) IsRead() bool {
	return n.read
}

// CreatedAt returns the creation timestamp.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkRead flags the notification as seen by its recipient.
func (n *Notification) MarkRead() {
	n.read = true
}
