package commands

import (
	"context"
	"time"

	"tableside/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles partial updates of an order.
// The order is loaded under a row lock so concurrent updates of the same
// order serialize; a status change appends a history entry only when the
// status actually changes, and item replacement never touches the ledger.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory UoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command.
// Orders already in a terminal status reject any update.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return withRetry(ctx, func(ctx context.Context) error {
		return h.handle(ctx, cmd)
	})
}

func (h *UpdateOrderCommandHandler) handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	if orderAggregate.Status().IsTerminal() {
		return errs.NewInvalidStateError("order", orderAggregate.Status().String())
	}

	now := time.Now().UTC()

	if cmd.HasLines() {
		items, err := buildOrderItems(ctx, uow.MenuItemRepository(), cmd.RestaurantID(), cmd.Lines(), now)
		if err != nil {
			return err
		}
		if err = orderAggregate.ReplaceItems(items); err != nil {
			return err
		}
	}

	if status := cmd.Status(); status != nil {
		if err = orderAggregate.ChangeStatus(*status, now); err != nil {
			return err
		}
	}

	if paid := cmd.Paid(); paid != nil {
		orderAggregate.SetPaid(*paid)
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
