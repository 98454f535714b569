package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parceltrack/internal/core/domain/model/kernel"
)

// ListNotificationsQueryHandler lists a user's notifications.
type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewListNotificationsQueryHandler creates a handler for notification
// listing queries.
func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

// Handle executes the notification listing query, newest first.
func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) ([]ListNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT id, title, message, link, read, created_at
		FROM notifications
		WHERE recipient_id = ?
	`
	args := []any{query.RecipientID().Bytes()}

	if query.UnreadOnly() {
		sqlQuery += " AND read = false"
	}
	sqlQuery += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]ListNotificationsQueryResponse, 0)
	for rows.Next() {
		var row ListNotificationsQueryResponse
		var id uuid.UUID
		var link sql.NullString

		err = rows.Scan(
			&id,
			&row.Title,
			&row.Message,
			&link,
			&row.Read,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = notificationID

		if link.Valid {
			row.Link = &link.String
		}
		notifications = append(notifications, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

// CountUnread returns the number of unread notifications of a recipient.
// Used for the badge in the navigation bar.
func (h ListNotificationsQueryHandler) CountUnread(ctx context.Context, recipientID kernel.UUID) (int64, error) {
	if err := recipientID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM notifications
		WHERE recipient_id = ? AND read = false
	`, recipientID.Bytes()).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
