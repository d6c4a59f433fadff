package queries

import (
	"context"
	"database/sql"
	"errors"

	"tableside/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetLatestTableOrderQueryHandler resolves the current order of a table.
// "Latest" is strictly by placement time, with the order identifier as a
// deterministic tie-break; paid and finished orders still count, so the
// response shows what the table last ordered even after settling up.
type GetLatestTableOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetLatestTableOrderQueryHandler creates a handler for table order queries.
func NewGetLatestTableOrderQueryHandler(db *gorm.DB) GetLatestTableOrderQueryHandler {
	return GetLatestTableOrderQueryHandler{db: db}
}

// Handle executes the query for a table's latest order.
// Returns an ObjectNotFoundError when the table has no orders at all.
func (h GetLatestTableOrderQueryHandler) Handle(
	ctx context.Context,
	query GetLatestTableOrderQuery,
) (OrderDetailResponse, error) {
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
		WHERE restaurant_id = ? AND table_id = ?
		ORDER BY placed_at DESC, id DESC
		LIMIT 1
	`, query.RestaurantID().Bytes(), query.TableID().Bytes()).Row()

	summary, err := scanSummary(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderDetailResponse{}, errs.NewObjectNotFoundError("tableId", query.TableID())
		}
		return OrderDetailResponse{}, err
	}

	return buildDetail(ctx, h.db, summary)
}
