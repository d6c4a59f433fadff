package commands

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var ErrUpsertTableOrderCommandIsNotConstructed = errors.New(
	"UpsertTableOrderCommand must be created via NewUpsertTableOrderCommand constructor",
)

// UpsertTableOrderCommand represents the table-centric order flow: submit
// item lines for a table and either extend the table's current open order or
// open a fresh one. newOrderID is used only when a new order is created.
type UpsertTableOrderCommand struct { //nolint:recvcheck //using for validation
	newOrderID   kernel.UUID
	restaurantID kernel.UUID
	tableID      kernel.UUID
	customerID   *kernel.UUID
	employeeID   *kernel.UUID
	status       *order.Status
	paid         *bool
	lines        []ItemLine

	guard guard.ConstructorGuard
}

// NewUpsertTableOrderCommand creates a command to submit an order for a table.
// Requires at least one item line; customer, employee, status, and paid may
// be nil.
func NewUpsertTableOrderCommand(
	newOrderID, restaurantID, tableID kernel.UUID,
	customerID, employeeID *kernel.UUID,
	status *order.Status,
	paid *bool,
	lines []ItemLine,
) (UpsertTableOrderCommand, error) {
	upsertCommand := UpsertTableOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		upsertCommand.setNewOrderID(newOrderID),
		upsertCommand.setRestaurantID(restaurantID),
		upsertCommand.setTableID(tableID),
		upsertCommand.setCustomerID(customerID),
		upsertCommand.setEmployeeID(employeeID),
		upsertCommand.setStatus(status),
		upsertCommand.setPaid(paid),
		upsertCommand.setLines(lines),
	); err != nil {
		return UpsertTableOrderCommand{}, err
	}

	return upsertCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpsertTableOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpsertTableOrderCommandIsNotConstructed)
}

// NewOrderID returns the identifier reserved for a newly created order.
func (c UpsertTableOrderCommand) NewOrderID() kernel.UUID {
	return c.newOrderID
}

// RestaurantID returns the restaurant the table belongs to.
func (c UpsertTableOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// TableID returns the table the lines are submitted for.
func (c UpsertTableOrderCommand) TableID() kernel.UUID {
	return c.tableID
}

// CustomerID returns the optional customer reference.
func (c UpsertTableOrderCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

// EmployeeID returns the optional employee reference.
func (c UpsertTableOrderCommand) EmployeeID() *kernel.UUID {
	return c.employeeID
}

// Status returns the requested status, or nil to leave the default.
func (c UpsertTableOrderCommand) Status() *order.Status {
	return c.status
}

// Paid returns the requested paid flag, or nil to leave the default.
func (c UpsertTableOrderCommand) Paid() *bool {
	return c.paid
}

// Lines returns the submitted item lines.
func (c UpsertTableOrderCommand) Lines() []ItemLine {
	return c.lines
}

func (c *UpsertTableOrderCommand) setNewOrderID(newOrderID kernel.UUID) error {
	if err := newOrderID.Validate(); err != nil {
		return err
	}

	c.newOrderID = newOrderID
	return nil
}

func (c *UpsertTableOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *UpsertTableOrderCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	c.tableID = tableID
	return nil
}

func (c *UpsertTableOrderCommand) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		return nil
	}
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpsertTableOrderCommand) setEmployeeID(employeeID *kernel.UUID) error {
	if employeeID == nil {
		return nil
	}
	if err := employeeID.Validate(); err != nil {
		return err
	}

	c.employeeID = employeeID
	return nil
}

func (c *UpsertTableOrderCommand) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpsertTableOrderCommand) setPaid(paid *bool) error {
	c.paid = paid
	return nil
}

func (c *UpsertTableOrderCommand) setLines(lines []ItemLine) error {
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
