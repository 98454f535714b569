package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"parceltrack/internal/core/ports"
)

// AdminAlerter sends an alert notification to every administrator.
type AdminAlerter interface {
	AlertAdministrators(ctx context.Context, title, message, link string)
}

// StaleParcelJob flags parcels still awaited long after their registration.
// Runs every morning and alerts the administrators about each stale parcel.
type StaleParcelJob struct {
	parcels  ports.ParcelRepository
	alerter  AdminAlerter
	maxAge   time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
	schedule string
}

// NewStaleParcelJob creates the stale parcel sweep.
// maxAge is how long a parcel may stay in the Awaited status before it is
// reported.
func NewStaleParcelJob(
	parcels ports.ParcelRepository,
	alerter AdminAlerter,
	maxAge time.Duration,
	logger *slog.Logger,
) *StaleParcelJob {
	return &StaleParcelJob{
		parcels:  parcels,
		alerter:  alerter,
		maxAge:   maxAge,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stale_parcel_job"),
		schedule: "0 0 8 * * *",
	}
}

// Start schedules the sweep to run every morning at 08:00.
func (j *StaleParcelJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.Run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale parcel job started (running daily at 08:00)")
	return nil
}

// Stop stops the stale parcel job.
func (j *StaleParcelJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale parcel job stopped")
}

// Run executes one sweep. Exported so operators can trigger it manually.
func (j *StaleParcelJob) Run() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-j.maxAge)

	stale, err := j.parcels.GetAllAwaitedBefore(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale parcel sweep failed", "error", err)
		return
	}

	if len(stale) == 0 {
		return
	}

	for _, p := range stale {
		j.alerter.AlertAdministrators(ctx,
			fmt.Sprintf("Colis %s", p.Label()),
			fmt.Sprintf("Le colis est attendu depuis plus de %d jours", int(j.maxAge.Hours()/24)),
			fmt.Sprintf("/colis/%s", p.ID().String()),
		)
	}

	j.logger.InfoContext(ctx, "Stale parcel sweep completed", "stale_parcels", len(stale))
}
