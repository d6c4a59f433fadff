package commands

import (
	"context"
	"fmt"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/menu"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/errs"
)

// buildOrderItems turns requested lines into domain items after checking each
// referenced menu item exists and belongs to the order's restaurant.
// A missing menu item yields an ObjectNotFoundError; a menu item owned by a
// different restaurant yields a ValueIsInvalidError.
func buildOrderItems(
	ctx context.Context,
	menuRepo ports.MenuItemRepository,
	restaurantID kernel.UUID,
	lines []ItemLine,
	now time.Time,
) ([]*order.Item, error) {
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.MenuItemID())
	}

	menuItems, err := menuRepo.GetAllByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*menu.MenuItem, len(menuItems))
	for _, menuItem := range menuItems {
		byID[menuItem.ID()] = menuItem
	}

	items := make([]*order.Item, 0, len(lines))
	for _, line := range lines {
		menuItem, ok := byID[line.MenuItemID()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("menuItemId", line.MenuItemID())
		}
		if !menuItem.BelongsTo(restaurantID) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"menuItemId",
				fmt.Errorf("menu item %s does not belong to restaurant %s",
					menuItem.ID(), restaurantID),
			)
		}

		item, err := order.NewItem(kernel.NewUUID(), line.MenuItemID(), line.Quantity(), line.AddedBy(), now)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
