package jobs

import (
	"context"
	"log/slog"
	"time"

	"tableside/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderSweepJob cancels unpaid pending orders that were placed too long
// ago. Runs every minute; the time-to-live controls how old an order must be
// before it is swept.
type StaleOrderSweepJob struct {
	handler commands.CancelStaleOrdersCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderSweepJob creates a new job for sweeping stale orders.
// Uses CancelStaleOrdersCommandHandler to cancel unpaid pending orders older
// than ttl.
func NewStaleOrderSweepJob(
	handler commands.CancelStaleOrdersCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *StaleOrderSweepJob {
	return &StaleOrderSweepJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_order_sweep_job"),
	}
}

// Start begins the stale order sweep job to run every minute.
func (j *StaleOrderSweepJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleOrdersCommand(time.Now().UTC().Add(-j.ttl))
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep job failed to build command", "error", err)
			return
		}

		cancelled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep job failed", "error", err)
			return
		}

		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale orders", "count", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order sweep job started (running every minute)", "ttl", j.ttl)
	return nil
}

// Stop stops the stale order sweep job.
func (j *StaleOrderSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order sweep job stopped")
}
