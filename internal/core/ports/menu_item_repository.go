package ports

import (
	"context"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for menu items.
// The lifecycle engine reads menu items to validate restaurant ownership of
// ordered lines and to price totals; menu management itself lives outside
// this service.
type MenuItemRepository interface {
	// Add persists a new menu item.
	Add(ctx context.Context, item *menu.MenuItem) error

	// Get retrieves a menu item by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetAllByIDs retrieves the menu items for the given identifiers.
	// Missing identifiers are simply absent from the result; the caller
	// decides whether absence is an error.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.MenuItem, error)
}
