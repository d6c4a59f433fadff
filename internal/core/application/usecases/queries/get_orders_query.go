package queries

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves all orders of a restaurant, newest first.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// OrderListEntryResponse is one row of the restaurant order list: the order
// header plus its priced total.
type OrderListEntryResponse struct {
	OrderSummaryResponse
	TotalCents int64
}

// NewGetOrdersQuery creates a query for a restaurant's order list.
func NewGetOrdersQuery(restaurantID kernel.UUID) (GetOrdersQuery, error) {
	query := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRestaurantID(restaurantID); err != nil {
		return GetOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// RestaurantID returns the restaurant scope of the query.
func (q GetOrdersQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

func (q *GetOrdersQuery) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	q.restaurantID = restaurantID
	return nil
}
