package ports

import (
	"context"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An aggregate is always stored and loaded whole: the order row, its line
// items, and its status history ledger.
type OrderRepository interface {
	// Add persists a new order aggregate, including its items and the
	// initial history entries.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate: the order row
	// is updated, items are rewritten wholesale, and any uncommitted history
	// entries are appended. Existing history rows are never touched.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves a complete order aggregate by its identifier, scoped to
	// the given restaurant.
	Get(ctx context.Context, restaurantID, id kernel.UUID) (*order.Order, error)

	// GetForUpdate behaves like Get but takes a row-level lock on the order
	// for the duration of the surrounding transaction, serializing
	// read-modify-write cycles on the same order. Different orders lock
	// independently and never block each other.
	GetForUpdate(ctx context.Context, restaurantID, id kernel.UUID) (*order.Order, error)

	// GetByItem resolves the order owning the given line item, scoped to the
	// restaurant, with the same locking semantics as GetForUpdate.
	GetByItem(ctx context.Context, restaurantID, itemID kernel.UUID) (*order.Order, error)

	// GetLatestForTable retrieves the most recent order for a
	// (restaurant, table) pair. "Latest" is strictly by placement timestamp
	// descending; equal timestamps resolve deterministically to the greatest
	// identifier. Returns an ObjectNotFoundError when the table has no orders.
	GetLatestForTable(ctx context.Context, restaurantID, tableID kernel.UUID) (*order.Order, error)

	// GetLatestForTableForUpdate is GetLatestForTable with a row-level lock,
	// for the create-or-update table flow.
	GetLatestForTableForUpdate(ctx context.Context, restaurantID, tableID kernel.UUID) (*order.Order, error)

	// GetAllForRestaurant retrieves all orders of one restaurant,
	// newest first.
	GetAllForRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error)

	// GetUnpaidPendingBefore retrieves unpaid orders still in the initial
	// status that were placed before the cutoff. Used by the stale-order sweep.
	GetUnpaidPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
