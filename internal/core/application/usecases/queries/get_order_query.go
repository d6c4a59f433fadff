// Package queries contains read-only operations for retrieving order state.
// Implements the Query pattern of the CQRS architecture: handlers bypass the
// domain model and read projections straight from the database.
package queries

import (
	"errors"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its line items, priced total, and
// full status history.
//
// Example:
//
//	query, err := NewGetOrderQuery(restaurantID, orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", detail.ID, detail.Status)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	orderID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order of a restaurant.
func NewGetOrderQuery(restaurantID, orderID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setRestaurantID(restaurantID),
		query.setOrderID(orderID),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// RestaurantID returns the restaurant scope of the query.
func (q GetOrderQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	q.restaurantID = restaurantID
	return nil
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// OrderItemResponse is one line of an order as returned by queries, joined
// with the menu for display name and unit price.
type OrderItemResponse struct {
	ID         kernel.UUID
	MenuItemID kernel.UUID
	Name       string
	PriceCents int64
	Quantity   int
	AddedBy    *kernel.UUID
}

// HistoryEntryResponse is one row of an order's status history ledger.
type HistoryEntryResponse struct {
	Status     string
	RecordedAt time.Time
}

// OrderSummaryResponse is the list view of an order: header fields without
// items or history.
type OrderSummaryResponse struct {
	ID         kernel.UUID
	TableID    kernel.UUID
	CustomerID *kernel.UUID
	EmployeeID *kernel.UUID
	PlacedAt   time.Time
	Status     string
	Paid       bool
}

// OrderDetailResponse is the full view of an order: header fields, priced
// line items with a computed total, and the status history in the order it
// was recorded.
type OrderDetailResponse struct {
	OrderSummaryResponse
	Items      []OrderItemResponse
	TotalCents int64
	History    []HistoryEntryResponse
}
