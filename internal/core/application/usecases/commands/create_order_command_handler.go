package commands

import (
	"context"
	"time"

	"tableside/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for opening an order.
// A new order starts in the initial status with its first history entry, and
// its lines are validated against the restaurant's menu before persisting.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(orderID, restaurantID, tableID, nil, nil, lines)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Creates the order in the initial status, attaches the validated lines, and
// commits everything in one transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return withRetry(ctx, func(ctx context.Context) error {
		return h.handle(ctx, cmd)
	})
}

func (h *CreateOrderCommandHandler) handle(ctx context.Context, cmd CreateOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.RestaurantID(), cmd.TableID(),
		cmd.CustomerID(), cmd.EmployeeID(), now,
	)
	if err != nil {
		return err
	}

	items, err := buildOrderItems(ctx, uow.MenuItemRepository(), cmd.RestaurantID(), cmd.Lines(), now)
	if err != nil {
		return err
	}
	if err = newOrder.ReplaceItems(items); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
