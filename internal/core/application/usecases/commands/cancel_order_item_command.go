package commands

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/guard"
)

var ErrCancelOrderItemCommandIsNotConstructed = errors.New(
	"CancelOrderItemCommand must be created via NewCancelOrderItemCommand constructor",
)

// CancelOrderItemCommand represents a request to remove a single line item
// from its order. The owning order is resolved from the item identifier.
type CancelOrderItemCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	itemID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderItemCommand creates a command to cancel one line item.
func NewCancelOrderItemCommand(restaurantID, itemID kernel.UUID) (CancelOrderItemCommand, error) {
	cancelCommand := CancelOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setRestaurantID(restaurantID),
		cancelCommand.setItemID(itemID),
	); err != nil {
		return CancelOrderItemCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderItemCommandIsNotConstructed)
}

// RestaurantID returns the restaurant the item's order belongs to.
func (c CancelOrderItemCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// ItemID returns the identifier of the line item to cancel.
func (c CancelOrderItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *CancelOrderItemCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CancelOrderItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
