package queries

import (
	"context"

	"tableside/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// scanSummary reads one order header row. The column order is shared by every
// query in this package: id, table_id, customer_id, employee_id, placed_at,
// status, paid.
func scanSummary(scan func(dest ...any) error) (OrderSummaryResponse, error) {
	var (
		summary    OrderSummaryResponse
		id         uuid.UUID
		tableID    uuid.UUID
		customerID uuid.NullUUID
		employeeID uuid.NullUUID
	)

	if err := scan(
		&id,
		&tableID,
		&customerID,
		&employeeID,
		&summary.PlacedAt,
		&summary.Status,
		&summary.Paid,
	); err != nil {
		return OrderSummaryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}
	summary.ID = orderID

	table, err := kernel.UUIDFromBytes(tableID[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}
	summary.TableID = table

	if summary.CustomerID, err = optionalUUID(customerID); err != nil {
		return OrderSummaryResponse{}, err
	}
	if summary.EmployeeID, err = optionalUUID(employeeID); err != nil {
		return OrderSummaryResponse{}, err
	}

	return summary, nil
}

func optionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil //nolint:nilnil //absent optional reference
	}
	converted, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

// loadItems reads the priced line items of an order, joined with the menu for
// name and unit price, and returns them with the computed order total. A line
// whose menu item row is gone still appears, with an empty name and a zero
// price.
func loadItems(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]OrderItemResponse, int64, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			oi.id,
			oi.menu_item_id,
			COALESCE(mi.name, ''),
			COALESCE(mi.price_cents, 0),
			oi.quantity,
			oi.added_by
		FROM order_items oi
		LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE oi.order_id = ?
		ORDER BY oi.created_at, oi.id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	var total int64

	for rows.Next() {
		var (
			item       OrderItemResponse
			id         uuid.UUID
			menuItemID uuid.UUID
			addedBy    uuid.NullUUID
		)

		if err = rows.Scan(&id, &menuItemID, &item.Name, &item.PriceCents, &item.Quantity, &addedBy); err != nil {
			return nil, 0, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, 0, err
		}
		if item.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return nil, 0, err
		}
		if item.AddedBy, err = optionalUUID(addedBy); err != nil {
			return nil, 0, err
		}

		total += item.PriceCents * int64(item.Quantity)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// loadHistory reads the status history ledger of an order in the order the
// entries were appended. The sequence column keeps the read deterministic
// even when consecutive entries share a timestamp.
func loadHistory(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]HistoryEntryResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			status,
			recorded_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY sequence
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]HistoryEntryResponse, 0)

	for rows.Next() {
		var entry HistoryEntryResponse
		if err = rows.Scan(&entry.Status, &entry.RecordedAt); err != nil {
			return nil, err
		}
		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

func buildDetail(ctx context.Context, db *gorm.DB, summary OrderSummaryResponse) (OrderDetailResponse, error) {
	items, total, err := loadItems(ctx, db, summary.ID)
	if err != nil {
		return OrderDetailResponse{}, err
	}

	history, err := loadHistory(ctx, db, summary.ID)
	if err != nil {
		return OrderDetailResponse{}, err
	}

	return OrderDetailResponse{
		OrderSummaryResponse: summary,
		Items:                items,
		TotalCents:           total,
		History:              history,
	}, nil
}
