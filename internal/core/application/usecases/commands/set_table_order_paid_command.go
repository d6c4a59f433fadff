package commands

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/guard"
)

var ErrSetTableOrderPaidCommandIsNotConstructed = errors.New(
	"SetTableOrderPaidCommand must be created via NewSetTableOrderPaidCommand constructor",
)

// SetTableOrderPaidCommand represents a request to flip the paid flag on the
// latest order of a table.
type SetTableOrderPaidCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	tableID      kernel.UUID
	paid         bool

	guard guard.ConstructorGuard
}

// NewSetTableOrderPaidCommand creates a command to mark a table's latest
// order paid or unpaid.
func NewSetTableOrderPaidCommand(
	restaurantID, tableID kernel.UUID, paid bool,
) (SetTableOrderPaidCommand, error) {
	paidCommand := SetTableOrderPaidCommand{
		paid:  paid,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paidCommand.setRestaurantID(restaurantID),
		paidCommand.setTableID(tableID),
	); err != nil {
		return SetTableOrderPaidCommand{}, err
	}

	return paidCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetTableOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrSetTableOrderPaidCommandIsNotConstructed)
}

// RestaurantID returns the restaurant the table belongs to.
func (c SetTableOrderPaidCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// TableID returns the table whose latest order is targeted.
func (c SetTableOrderPaidCommand) TableID() kernel.UUID {
	return c.tableID
}

// Paid returns the requested paid flag value.
func (c SetTableOrderPaidCommand) Paid() bool {
	return c.paid
}

func (c *SetTableOrderPaidCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *SetTableOrderPaidCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	c.tableID = tableID
	return nil
}
