package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"tableside/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleOrderSweepJob *StaleOrderSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// A zero staleOrderTTL disables the stale order sweep.
func NewJobManager(
	cancelStaleOrdersHandler commands.CancelStaleOrdersCommandHandler,
	staleOrderTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	manager := &JobManager{}
	if staleOrderTTL > 0 {
		manager.staleOrderSweepJob = NewStaleOrderSweepJob(cancelStaleOrdersHandler, staleOrderTTL, logger)
	}
	return manager
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.staleOrderSweepJob == nil {
		return nil
	}

	if err := jm.staleOrderSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.staleOrderSweepJob != nil {
		jm.staleOrderSweepJob.Stop()
	}
}
