// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Implements the repository pattern for the order
// aggregate: the order row, its line items, and its status history ledger are
// stored and loaded together.
package orderrepo

import (
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed for the two hot lookups: all orders of a restaurant and the latest
// order of a table.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;index:idx_orders_restaurant;index:idx_orders_table,priority:1"`
	TableID      uuid.UUID  `gorm:"type:uuid;index:idx_orders_table,priority:2"`
	CustomerID   *uuid.UUID `gorm:"type:uuid"`
	EmployeeID   *uuid.UUID `gorm:"type:uuid"`
	PlacedAt     time.Time  `gorm:"index"`
	Status       string     `gorm:"type:varchar(16);index"`
	Paid         bool
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line item row of an order.
type OrderItemDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID  `gorm:"type:uuid;index"`
	Quantity   int
	AddedBy    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderStatusHistoryDTO represents one row of the append-only status ledger.
// Rows are only ever inserted; there is no update or delete path. Sequence is
// the entry's position in the aggregate's ledger and is the read ordering:
// two entries may share a timestamp when one status change directly follows
// another.
type OrderStatusHistoryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Sequence   int
	Status     string    `gorm:"type:varchar(16)"`
	RecordedAt time.Time
}

// TableName specifies the database table name for status history entries.
func (OrderStatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order aggregate to its order row representation.
// Items and history rows are mapped separately.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		TableID:      aggregate.TableID().Bytes(),
		CustomerID:   optionalBytes(aggregate.CustomerID()),
		EmployeeID:   optionalBytes(aggregate.EmployeeID()),
		PlacedAt:     aggregate.PlacedAt(),
		Status:       aggregate.Status().String(),
		Paid:         aggregate.Paid(),
	}
}

func itemFromDomain(orderID kernel.UUID, item *order.Item) OrderItemDTO {
	return OrderItemDTO{
		ID:         item.ID().Bytes(),
		OrderID:    orderID.Bytes(),
		MenuItemID: item.MenuItemID().Bytes(),
		Quantity:   item.Quantity(),
		AddedBy:    optionalBytes(item.AddedBy()),
		CreatedAt:  item.CreatedAt(),
		UpdatedAt:  item.UpdatedAt(),
	}
}

func historyFromDomain(orderID kernel.UUID, entry order.HistoryEntry, sequence int) OrderStatusHistoryDTO {
	return OrderStatusHistoryDTO{
		ID:         entry.ID().Bytes(),
		OrderID:    orderID.Bytes(),
		Sequence:   sequence,
		Status:     entry.Status().String(),
		RecordedAt: entry.RecordedAt(),
	}
}

// toDomain reconstructs the complete aggregate from its rows using
// RestoreOrder, so no creation side effects run.
func toDomain(dto OrderDTO, itemDTOs []OrderItemDTO, historyDTOs []OrderStatusHistoryDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	tableID, err := kernel.UUIDFromBytes(dto.TableID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := optionalUUID(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	employeeID, err := optionalUUID(dto.EmployeeID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]order.HistoryEntry, 0, len(historyDTOs))
	for _, historyDTO := range historyDTOs {
		entry, historyErr := historyToDomain(historyDTO)
		if historyErr != nil {
			return nil, historyErr
		}
		history = append(history, entry)
	}

	return order.RestoreOrder(
		id, restaurantID, tableID,
		customerID, employeeID,
		dto.PlacedAt, status, dto.Paid,
		items, history,
	)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}

	addedBy, err := optionalUUID(dto.AddedBy)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, menuItemID, dto.Quantity, addedBy, dto.CreatedAt, dto.UpdatedAt)
}

func historyToDomain(dto OrderStatusHistoryDTO) (order.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.HistoryEntry{}, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return order.HistoryEntry{}, err
	}

	return order.RestoreHistoryEntry(id, status, dto.RecordedAt)
}

func optionalBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil //nolint:nilnil //absent optional reference
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
