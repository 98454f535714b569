// Package jobs provides scheduled background tasks for the parcel tracking
// system, implemented with github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StaleParcelJob - Runs daily to alert administrators about parcels still
// awaited long after their registration.
// 2. NotificationCleanupJob - Runs nightly to delete read notifications older
// than the retention window.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(parcels, notifications, dispatcher, cfg, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and retried on the next scheduled run; a failing
// sweep never takes the process down.
package jobs
