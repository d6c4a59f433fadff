package commands

import (
	"errors"
	"fmt"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var ErrItemLineIsNotConstructed = errors.New(
	"ItemLine must be created via NewItemLine constructor",
)

// ItemLine is one requested line of an order: a menu item reference, how many
// of it, and optionally who added it. Commands carry item lines instead of
// domain items because the line has not been validated against the menu yet.
type ItemLine struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	quantity   int
	addedBy    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewItemLine creates a validated order line request.
// The menu item ID must be valid and quantity must be positive; addedBy may
// be nil for anonymous lines.
func NewItemLine(menuItemID kernel.UUID, quantity int, addedBy *kernel.UUID) (ItemLine, error) {
	line := ItemLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setMenuItemID(menuItemID),
		line.setQuantity(quantity),
		line.setAddedBy(addedBy),
	); err != nil {
		return ItemLine{}, err
	}

	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l ItemLine) Validate() error {
	return l.guard.Validate(ErrItemLineIsNotConstructed)
}

// MenuItemID returns the referenced menu item identifier.
func (l ItemLine) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Quantity returns the requested quantity.
func (l ItemLine) Quantity() int {
	return l.quantity
}

// AddedBy returns the identifier of whoever added the line, or nil.
func (l ItemLine) AddedBy() *kernel.UUID {
	return l.addedBy
}

func (l *ItemLine) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	l.menuItemID = menuItemID
	return nil
}

func (l *ItemLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	l.quantity = quantity
	return nil
}

func (l *ItemLine) setAddedBy(addedBy *kernel.UUID) error {
	if addedBy == nil {
		return nil
	}
	if err := addedBy.Validate(); err != nil {
		return err
	}

	l.addedBy = addedBy
	return nil
}
