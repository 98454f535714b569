package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

// ListNotificationsQuery retrieves a user's notifications, newest first,
// optionally restricted to unread ones.
type ListNotificationsQuery struct {
	recipientID kernel.UUID
	unreadOnly  bool

	guard guard.ConstructorGuard
}

// NewListNotificationsQuery creates a query for a user's notifications.
func NewListNotificationsQuery(recipientID kernel.UUID, unreadOnly bool) (ListNotificationsQuery, error) {
	if err := recipientID.Validate(); err != nil {
		return ListNotificationsQuery{}, err
	}

	return ListNotificationsQuery{
		recipientID: recipientID,
		unreadOnly:  unreadOnly,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

// RecipientID returns the user whose notifications are listed.
func (q ListNotificationsQuery) RecipientID() kernel.UUID {
	return q.recipientID
}

// UnreadOnly reports whether read notifications are filtered out.
func (q ListNotificationsQuery) UnreadOnly() bool {
	return q.unreadOnly
}

// ListNotificationsQueryResponse is one notification in the read model.
type ListNotificationsQueryResponse struct {
	ID        kernel.UUID
	Title     string
	Message   string
	Link      *string
	Read      bool
	CreatedAt time.Time
}
