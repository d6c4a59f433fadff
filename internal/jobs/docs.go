// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance of the order lifecycle.
//
// # Available Jobs
//
// 1. StaleOrderSweepJob - Runs every minute to cancel unpaid pending orders
// older than the configured time-to-live
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, staleOrderTTL, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep uses the cron expression "* * * * *", running once per minute.
// Stale orders do not need sub-minute reaction time, and each run takes row
// locks on the orders it cancels.
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick. A zero time-to-live
// disables the job entirely.
package jobs
