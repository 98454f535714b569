package ports

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for in-app
// notifications.
type NotificationRepository interface {
	// Add persists a new notification.
	Add(ctx context.Context, n *notification.Notification) error

	// Get retrieves a notification by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// Update persists changes to an existing notification.
	Update(ctx context.Context, n *notification.Notification) error

	// MarkAllRead marks every unread notification of a recipient as read.
	MarkAllRead(ctx context.Context, recipientID kernel.UUID) error

	// DeleteOlderThan removes read notifications created before the cutoff.
	// Returns the number of rows removed. Used by the retention sweep job.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
