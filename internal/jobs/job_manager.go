package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	stalledLoadMonitorJob *StalledLoadMonitorJob
}

// NewJobManager creates a job manager over the configured jobs.
func NewJobManager(stalledLoadMonitorJob *StalledLoadMonitorJob) *JobManager {
	return &JobManager{
		stalledLoadMonitorJob: stalledLoadMonitorJob,
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.stalledLoadMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start stalled load monitor job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stalledLoadMonitorJob.Stop()
}
