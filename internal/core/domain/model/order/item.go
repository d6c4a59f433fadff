package order

import (
	"errors"
	"fmt"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through NewItem or RestoreItem. This ensures all items are properly validated.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")
)

// Item is one line entry of an order: a menu item and a quantity, attributed
// to the employee who entered it. An item belongs to exactly one order and is
// owned by that order's aggregate; it is never mutated or persisted on its own.
//
// Invariants:
//   - quantity is a positive integer; zero or negative is a validation
//     failure, never silently clamped
//   - the menu item reference must be valid
type Item struct {
	// id is the unique identifier for the line item
	id kernel.UUID

	// menuItemID references the menu item being ordered
	menuItemID kernel.UUID

	// quantity is the number of units ordered (must be positive)
	quantity int

	// addedBy is the employee who entered the line (nil for walk-up self-service)
	addedBy *kernel.UUID

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the item was created via NewItem or RestoreItem
	isConstructed bool
}

// NewItem creates a new line item with validation.
// The creation time is used for both created and updated timestamps.
func NewItem(id, menuItemID kernel.UUID, quantity int, addedBy *kernel.UUID, now time.Time) (*Item, error) {
	return RestoreItem(id, menuItemID, quantity, addedBy, now.UTC(), now.UTC())
}

// RestoreItem reconstructs a line item from persistence.
// The same validation rules apply as for NewItem.
func RestoreItem(
	id, menuItemID kernel.UUID,
	quantity int,
	addedBy *kernel.UUID,
	createdAt, updatedAt time.Time,
) (*Item, error) {
	item := &Item{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setMenuItemID(menuItemID),
		item.setQuantity(quantity),
		item.setAddedBy(addedBy),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// MenuItemID returns the referenced menu item's identifier.
func (i *Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// AddedBy returns the employee who entered the line, or nil.
func (i *Item) AddedBy() *kernel.UUID {
	return i.addedBy
}

// CreatedAt returns the time the line was entered.
func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

// UpdatedAt returns the time the line was last written.
func (i *Item) UpdatedAt() time.Time {
	return i.updatedAt
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setAddedBy(addedBy *kernel.UUID) error {
	if addedBy != nil {
		if err := addedBy.Validate(); err != nil {
			return err
		}
	}
	i.addedBy = addedBy
	return nil
}
