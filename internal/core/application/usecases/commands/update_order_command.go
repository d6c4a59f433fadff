package commands

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of an existing order.
// Status, paid flag, and the item list are each optional: a nil status or
// paid pointer leaves the field unchanged, and nil lines leave the current
// items in place. When lines are given they replace the item list wholesale.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	restaurantID kernel.UUID
	status       *order.Status
	paid         *bool
	lines        []ItemLine
	hasLines     bool

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order.
// At least one of status, paid, or lines must be supplied. Passing an empty
// non-nil lines slice is rejected: an order cannot be emptied by update,
// only cancelled by removing its items one by one.
func NewUpdateOrderCommand(
	orderID, restaurantID kernel.UUID,
	status *order.Status,
	paid *bool,
	lines []ItemLine,
) (UpdateOrderCommand, error) {
	updateCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setOrderID(orderID),
		updateCommand.setRestaurantID(restaurantID),
		updateCommand.setStatus(status),
		updateCommand.setPaid(paid),
		updateCommand.setLines(lines),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	if status == nil && paid == nil && lines == nil {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("update fields")
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestaurantID returns the restaurant the order belongs to.
func (c UpdateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Status returns the requested status change, or nil when unchanged.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

// Paid returns the requested paid flag, or nil when unchanged.
func (c UpdateOrderCommand) Paid() *bool {
	return c.paid
}

// Lines returns the replacement item lines when HasLines reports true.
func (c UpdateOrderCommand) Lines() []ItemLine {
	return c.lines
}

// HasLines reports whether the command replaces the order's item list.
func (c UpdateOrderCommand) HasLines() bool {
	return c.hasLines
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *UpdateOrderCommand) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateOrderCommand) setPaid(paid *bool) error {
	c.paid = paid
	return nil
}

func (c *UpdateOrderCommand) setLines(lines []ItemLine) error {
	if lines == nil {
		return nil
	}
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = lines
	c.hasLines = true
	return nil
}
