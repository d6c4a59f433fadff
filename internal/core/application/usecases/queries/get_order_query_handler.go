package queries

import (
	"context"
	"database/sql"
	"errors"

	"tableside/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order from the database.
// The response carries the priced line items, the computed total, and the
// status history ledger oldest first.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query for one order.
// Returns an ObjectNotFoundError when the order does not exist in the given
// restaurant.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			table_id,
			customer_id,
			employee_id,
			placed_at,
			status,
			paid
		FROM orders
		WHERE restaurant_id = ? AND id = ?
	`, query.RestaurantID().Bytes(), query.OrderID().Bytes()).Row()

	summary, err := scanSummary(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderDetailResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
		}
		return OrderDetailResponse{}, err
	}

	return buildDetail(ctx, h.db, summary)
}
