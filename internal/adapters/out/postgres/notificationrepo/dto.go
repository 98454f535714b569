package notificationrepo

import (
	"time"

	"github.com/google/uuid"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/notification"
)

// NotificationDTO is the GORM data transfer object for notifications.
type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"not null"`
	Message     string    `gorm:"not null"`
	Link        *string
	Read        bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName returns the database table name for notifications.
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          n.ID().Bytes(),
		RecipientID: n.RecipientID().Bytes(),
		Title:       n.Title(),
		Message:     n.Message(),
		Link:        n.Link(),
		Read:        n.IsRead(),
		CreatedAt:   n.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		recipientID,
		dto.Title,
		dto.Message,
		dto.Link,
		dto.Read,
		dto.CreatedAt,
	)
}
