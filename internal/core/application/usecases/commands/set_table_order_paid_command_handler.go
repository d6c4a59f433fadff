package commands

import (
	"context"

	"tableside/internal/core/domain/model/kernel"
)

// SetTableOrderPaidCommandHandler flips the paid flag on a table's latest
// order. Payment settlement is independent of the lifecycle: a completed or
// cancelled order can still be marked paid, and the history ledger is never
// touched.
type SetTableOrderPaidCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetTableOrderPaidCommandHandler creates a handler for the paid flag flow.
func NewSetTableOrderPaidCommandHandler(uowFactory OrderUoWFactory) SetTableOrderPaidCommandHandler {
	return SetTableOrderPaidCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the paid flag command.
// Returns the identifier of the order that was updated.
func (h *SetTableOrderPaidCommandHandler) Handle(
	ctx context.Context, cmd SetTableOrderPaidCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	var orderID kernel.UUID
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		orderID, err = h.handle(ctx, cmd)
		return err
	})
	return orderID, err
}

func (h *SetTableOrderPaidCommandHandler) handle(
	ctx context.Context, cmd SetTableOrderPaidCommand,
) (kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	latest, err := orderRepo.GetLatestForTableForUpdate(ctx, cmd.RestaurantID(), cmd.TableID())
	if err != nil {
		return kernel.UUID{}, err
	}

	latest.SetPaid(cmd.Paid())

	if err = orderRepo.Update(ctx, latest); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return latest.ID(), nil
}
