package commands

import (
	"context"
	"time"
)

// CancelOrderCommandHandler moves an order into the cancelled status.
// Cancellation is terminal: orders already completed or cancelled reject it,
// and the transition is recorded in the status history ledger.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancel order command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return withRetry(ctx, func(ctx context.Context) error {
		return h.handle(ctx, cmd)
	})
}

func (h *CancelOrderCommandHandler) handle(ctx context.Context, cmd CancelOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orderAggregate, err := orderRepo.GetForUpdate(ctx, cmd.RestaurantID(), cmd.OrderID())
	if err != nil {
		return err
	}

	if err = orderAggregate.Cancel(time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
