package commands

import (
	"context"
	"time"
)

// CancelOrderItemCommandHandler removes one line item from its order.
// Removing the last remaining item cancels the whole order in the same
// transaction; the caller learns about the cascade from the result so it can
// report it distinctly.
type CancelOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderItemCommandHandler creates a handler for line item cancellation.
func NewCancelOrderItemCommandHandler(uowFactory OrderUoWFactory) CancelOrderItemCommandHandler {
	return CancelOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancel item command.
// Returns true when removing the item cancelled the entire order.
func (h *CancelOrderItemCommandHandler) Handle(ctx context.Context, cmd CancelOrderItemCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	var cancelled bool
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		cancelled, err = h.handle(ctx, cmd)
		return err
	})
	return cancelled, err
}

func (h *CancelOrderItemCommandHandler) handle(ctx context.Context, cmd CancelOrderItemCommand) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orderAggregate, err := orderRepo.GetByItem(ctx, cmd.RestaurantID(), cmd.ItemID())
	if err != nil {
		return false, err
	}

	cancelled, err := orderAggregate.RemoveItem(cmd.ItemID(), time.Now().UTC())
	if err != nil {
		return false, err
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return cancelled, nil
}
