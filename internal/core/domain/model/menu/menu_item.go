// Package menu holds the menu item entity the order lifecycle validates
// against: line items may only reference menu items of the same restaurant,
// and totals are computed from menu prices.
package menu

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

var (
	// ErrMenuItemIsNotConstructed is returned when a MenuItem was not created
	// through the NewMenuItem factory method.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem")
)

// MenuItem is one orderable entry of a restaurant's menu.
// The order lifecycle uses it for two things: same-restaurant validation at
// item creation and price lookup when totals are computed.
type MenuItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	categoryID   *kernel.UUID
	name         string
	price        kernel.Money

	isConstructed bool
}

// NewMenuItem creates a menu item with validation.
// categoryID may be nil for uncategorized entries.
func NewMenuItem(
	id, restaurantID kernel.UUID,
	categoryID *kernel.UUID,
	name string,
	price kernel.Money,
) (*MenuItem, error) {
	m := &MenuItem{
		price:         price,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setRestaurantID(restaurantID),
		m.setCategoryID(categoryID),
		m.setName(name),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate ensures the MenuItem instance was properly constructed.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// RestaurantID returns the owning restaurant's identifier.
func (m *MenuItem) RestaurantID() kernel.UUID {
	return m.restaurantID
}

// CategoryID returns the category identifier, or nil.
func (m *MenuItem) CategoryID() *kernel.UUID {
	return m.categoryID
}

// Name returns the display name.
func (m *MenuItem) Name() string {
	return m.name
}

// Price returns the unit price.
func (m *MenuItem) Price() kernel.Money {
	return m.price
}

// BelongsTo reports whether the menu item belongs to the given restaurant.
func (m *MenuItem) BelongsTo(restaurantID kernel.UUID) bool {
	return m.restaurantID.IsEqual(restaurantID)
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	m.restaurantID = restaurantID
	return nil
}

func (m *MenuItem) setCategoryID(categoryID *kernel.UUID) error {
	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return err
		}
	}
	m.categoryID = categoryID
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}
