package commands

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new order for a table.
// Carries the restaurant and table the order belongs to, optional customer
// and employee references, and at least one requested line.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, restaurantID, tableID, nil, nil, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	restaurantID kernel.UUID
	tableID      kernel.UUID
	customerID   *kernel.UUID
	employeeID   *kernel.UUID
	lines        []ItemLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order.
// Validates the identifiers and requires at least one item line; customer
// and employee references may be nil.
func NewCreateOrderCommand(
	orderID, restaurantID, tableID kernel.UUID,
	customerID, employeeID *kernel.UUID,
	lines []ItemLine,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setRestaurantID(restaurantID),
		orderCommand.setTableID(tableID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setEmployeeID(employeeID),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestaurantID returns the restaurant the order belongs to.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// TableID returns the table the order is placed for.
func (c CreateOrderCommand) TableID() kernel.UUID {
	return c.tableID
}

// CustomerID returns the optional customer reference.
func (c CreateOrderCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

// EmployeeID returns the optional employee reference.
func (c CreateOrderCommand) EmployeeID() *kernel.UUID {
	return c.employeeID
}

// Lines returns the requested item lines.
func (c CreateOrderCommand) Lines() []ItemLine {
	return c.lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	c.tableID = tableID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		return nil
	}
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setEmployeeID(employeeID *kernel.UUID) error {
	if employeeID == nil {
		return nil
	}
	if err := employeeID.Validate(); err != nil {
		return err
	}

	c.employeeID = employeeID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []ItemLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = lines
	return nil
}
