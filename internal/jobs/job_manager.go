package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueDeliveriesJob *OverdueDeliveriesJob
	stalePendingJob      *StalePendingJob
}

// Schedules are six-field cron expressions, seconds first.
type Schedules struct {
	OverdueDeliveries string
	StalePending      string
}

// NewJobManager creates a new job manager with all required jobs.
// Both watchers share the same read-side finder.
func NewJobManager(finder LateParcelsFinder, schedules Schedules, logger *slog.Logger) *JobManager {
	return &JobManager{
		overdueDeliveriesJob: NewOverdueDeliveriesJob(finder, schedules.OverdueDeliveries, logger),
		stalePendingJob:      NewStalePendingJob(finder, schedules.StalePending, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueDeliveriesJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue deliveries job: %w", err)
	}

	if err := jm.stalePendingJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.overdueDeliveriesJob.Stop()
		return fmt.Errorf("failed to start stale pending job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running scans to finish.
func (jm *JobManager) StopAll() {
	jm.stalePendingJob.Stop()
	jm.overdueDeliveriesJob.Stop()
}
