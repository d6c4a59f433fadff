package commands

import (
	"context"
	"errors"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"
)

// UpsertTableOrderResult reports which order absorbed the submitted lines.
type UpsertTableOrderResult struct {
	OrderID kernel.UUID
	Created bool
}

// UpsertTableOrderCommandHandler implements the create-or-update table flow.
// The table's latest order is resolved under a row lock; when it exists, is
// unpaid, and is still active, the submitted lines replace its items and any
// submitted status, paid, customer, or employee values are merged in.
// Otherwise a new order is opened. A paid or finished order is never reopened.
type UpsertTableOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpsertTableOrderCommandHandler creates a handler for the table order flow.
func NewUpsertTableOrderCommandHandler(uowFactory UoWFactory) UpsertTableOrderCommandHandler {
	return UpsertTableOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the table order submission.
func (h *UpsertTableOrderCommandHandler) Handle(
	ctx context.Context, cmd UpsertTableOrderCommand,
) (UpsertTableOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpsertTableOrderResult{}, err
	}

	var result UpsertTableOrderResult
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		result, err = h.handle(ctx, cmd)
		return err
	})
	return result, err
}

func (h *UpsertTableOrderCommandHandler) handle(
	ctx context.Context, cmd UpsertTableOrderCommand,
) (UpsertTableOrderResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpsertTableOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()
	orderRepo := uow.OrderRepository()

	items, err := buildOrderItems(ctx, uow.MenuItemRepository(), cmd.RestaurantID(), cmd.Lines(), now)
	if err != nil {
		return UpsertTableOrderResult{}, err
	}

	latest, err := orderRepo.GetLatestForTableForUpdate(ctx, cmd.RestaurantID(), cmd.TableID())
	switch {
	case err == nil && !latest.Paid() && !latest.Status().IsTerminal():
		if err = latest.ReplaceItems(items); err != nil {
			return UpsertTableOrderResult{}, err
		}
		if cmd.CustomerID() != nil {
			if err = latest.SetCustomer(cmd.CustomerID()); err != nil {
				return UpsertTableOrderResult{}, err
			}
		}
		if cmd.EmployeeID() != nil {
			if err = latest.SetEmployee(cmd.EmployeeID()); err != nil {
				return UpsertTableOrderResult{}, err
			}
		}
		if cmd.Status() != nil {
			if err = latest.ChangeStatus(*cmd.Status(), now); err != nil {
				return UpsertTableOrderResult{}, err
			}
		}
		if cmd.Paid() != nil {
			latest.SetPaid(*cmd.Paid())
		}
		if err = orderRepo.Update(ctx, latest); err != nil {
			return UpsertTableOrderResult{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return UpsertTableOrderResult{}, err
		}
		return UpsertTableOrderResult{OrderID: latest.ID()}, nil

	case err != nil && !errors.Is(err, errs.ErrObjectNotFound):
		return UpsertTableOrderResult{}, err
	}

	newOrder, err := order.NewOrder(
		cmd.NewOrderID(), cmd.RestaurantID(), cmd.TableID(),
		cmd.CustomerID(), cmd.EmployeeID(), now,
	)
	if err != nil {
		return UpsertTableOrderResult{}, err
	}
	if err = newOrder.ReplaceItems(items); err != nil {
		return UpsertTableOrderResult{}, err
	}
	if cmd.Status() != nil {
		if err = newOrder.ChangeStatus(*cmd.Status(), now); err != nil {
			return UpsertTableOrderResult{}, err
		}
	}
	if cmd.Paid() != nil {
		newOrder.SetPaid(*cmd.Paid())
	}
	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return UpsertTableOrderResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return UpsertTableOrderResult{}, err
	}

	return UpsertTableOrderResult{OrderID: newOrder.ID(), Created: true}, nil
}
