package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"parceltrack/internal/core/ports"
)

// NotificationCleanupJob deletes read notifications older than the retention
// window. Runs nightly to keep the notifications table small.
type NotificationCleanupJob struct {
	notifications ports.NotificationRepository
	retention     time.Duration
	cron          *cron.Cron
	logger        *slog.Logger
	schedule      string
}

// NewNotificationCleanupJob creates the notification retention sweep.
func NewNotificationCleanupJob(
	notifications ports.NotificationRepository,
	retention time.Duration,
	logger *slog.Logger,
) *NotificationCleanupJob {
	return &NotificationCleanupJob{
		notifications: notifications,
		retention:     retention,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "notification_cleanup_job"),
		schedule:      "0 30 3 * * *",
	}
}

// Start schedules the sweep to run nightly at 03:30.
func (j *NotificationCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.Run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification cleanup job started (running nightly at 03:30)")
	return nil
}

// Stop stops the notification cleanup job.
func (j *NotificationCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification cleanup job stopped")
}

// Run executes one sweep. Exported so operators can trigger it manually.
func (j *NotificationCleanupJob) Run() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-j.retention)

	deleted, err := j.notifications.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification cleanup failed", "error", err)
		return
	}

	if deleted > 0 {
		j.logger.InfoContext(ctx, "Notification cleanup completed", "deleted", deleted)
	}
}
