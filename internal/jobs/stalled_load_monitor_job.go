package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"carrierops/internal/core/application/usecases/queries"
)

// StalledLoadMonitorJob periodically sweeps for loads that are supposed to be
// moving but have sat untouched past the threshold. Detection only: the job
// logs each stalled load so dispatch can chase it, it never mutates state.
type StalledLoadMonitorJob struct {
	handler   queries.GetStalledLoadsQueryHandler
	threshold time.Duration
	spec      string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStalledLoadMonitorJob creates the monitor. spec is a standard cron
// expression; threshold is how long an in-flight load may sit before it
// counts as stalled.
func NewStalledLoadMonitorJob(
	handler queries.GetStalledLoadsQueryHandler,
	threshold time.Duration,
	spec string,
	logger *slog.Logger,
) *StalledLoadMonitorJob {
	return &StalledLoadMonitorJob{
		handler:   handler,
		threshold: threshold,
		spec:      spec,
		cron:      cron.New(),
		logger:    logger.With("component", "stalled_load_monitor_job"),
	}
}

// Start schedules the sweep.
func (j *StalledLoadMonitorJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stalled load monitor started",
		"schedule", j.spec, "threshold", j.threshold.String())
	return nil
}

// Stop stops the scheduled sweep.
func (j *StalledLoadMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stalled load monitor stopped")
}

func (j *StalledLoadMonitorJob) sweep() {
	ctx := context.Background()

	query, err := queries.NewGetStalledLoadsQuery(j.threshold, time.Now().UTC())
	if err != nil {
		j.logger.ErrorContext(ctx, "Stalled load sweep misconfigured", "error", err)
		return
	}

	stalled, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stalled load sweep failed", "error", err)
		return
	}

	if len(stalled) == 0 {
		return
	}

	j.logger.WarnContext(ctx, "Stalled loads detected", "count", len(stalled))
	for _, l := range stalled {
		j.logger.WarnContext(ctx, "Load has not moved past threshold",
			"loadId", l.ID.String(),
			"fleetId", l.FleetID.String(),
			"status", l.Status,
			"lastUpdated", l.UpdatedAt,
		)
	}
}
