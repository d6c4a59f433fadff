package commands

import (
	"context"
	"time"
)

// CancelStaleOrdersCommandHandler cancels unpaid orders that never left the
// initial status before the cutoff. Runs periodically from the job scheduler;
// cancellations are recorded in each order's history ledger like any other
// transition.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale sweep.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stale order sweep.
// Returns how many orders were cancelled.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	var cancelled int
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		cancelled, err = h.handle(ctx, cmd)
		return err
	})
	return cancelled, err
}

func (h *CancelStaleOrdersCommandHandler) handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	staleOrders, err := orderRepo.GetUnpaidPendingBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	for _, staleOrder := range staleOrders {
		if err = staleOrder.Cancel(now); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, staleOrder); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(staleOrders), nil
}
