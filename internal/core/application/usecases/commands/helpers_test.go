package commands_test

import (
	"testing"
	"time"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/menu"
	"tableside/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func newTestLine(t *testing.T, menuItemID kernel.UUID, quantity int) commands.ItemLine {
	t.Helper()
	line, err := commands.NewItemLine(menuItemID, quantity, nil)
	require.NoError(t, err)
	return line
}

func newTestMenuItem(t *testing.T, id, restaurantID kernel.UUID) *menu.MenuItem {
	t.Helper()
	price, err := kernel.NewMoney(500)
	require.NoError(t, err)
	menuItem, err := menu.NewMenuItem(id, restaurantID, nil, "Soup of the day", price)
	require.NoError(t, err)
	return menuItem
}

func newTestOrder(t *testing.T, restaurantID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), restaurantID, kernel.NewUUID(), nil, nil, time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func newTestOrderWithItems(t *testing.T, restaurantID kernel.UUID, itemIDs ...kernel.UUID) *order.Order {
	t.Helper()
	o := newTestOrder(t, restaurantID)
	items := make([]*order.Item, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		item, err := order.RestoreItem(
			itemID, kernel.NewUUID(), 1, nil, time.Now().UTC(), time.Now().UTC(),
		)
		require.NoError(t, err)
		items = append(items, item)
	}
	require.NoError(t, o.ReplaceItems(items))
	return o
}
