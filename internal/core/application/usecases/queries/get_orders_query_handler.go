package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves the order list of a restaurant.
// Returns header rows with a priced total per order; line items and history
// are fetched per order through GetOrderQuery.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query for all orders of a restaurant.
// Results are sorted newest first, with the order identifier as a
// deterministic tie-break.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderListEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.table_id,
			o.customer_id,
			o.employee_id,
			o.placed_at,
			o.status,
			o.paid,
			COALESCE(totals.total_cents, 0)
		FROM orders o
		LEFT JOIN (
			SELECT oi.order_id, SUM(COALESCE(mi.price_cents, 0) * oi.quantity) AS total_cents
			FROM order_items oi
			LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id
			GROUP BY oi.order_id
		) totals ON totals.order_id = o.id
		WHERE o.restaurant_id = ?
		ORDER BY o.placed_at DESC, o.id DESC
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderListEntryResponse, 0)

	for rows.Next() {
		var entry OrderListEntryResponse
		summary, err := scanSummary(func(dest ...any) error {
			return rows.Scan(append(dest, &entry.TotalCents)...)
		})
		if err != nil {
			return nil, err
		}
		entry.OrderSummaryResponse = summary
		orders = append(orders, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
