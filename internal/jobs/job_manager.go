package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"parceltrack/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleParcelJob         *StaleParcelJob
	notificationCleanupJob *NotificationCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	parcels ports.ParcelRepository,
	notifications ports.NotificationRepository,
	alerter AdminAlerter,
	staleParcelAfter time.Duration,
	notificationRetention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleParcelJob:         NewStaleParcelJob(parcels, alerter, staleParcelAfter, logger),
		notificationCleanupJob: NewNotificationCleanupJob(notifications, notificationRetention, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleParcelJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale parcel job: %w", err)
	}

	if err := jm.notificationCleanupJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.staleParcelJob.Stop()
		return fmt.Errorf("failed to start notification cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationCleanupJob.Stop()
	jm.staleParcelJob.Stop()
}
