package queries

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/guard"
)

var ErrGetLatestTableOrderQueryIsNotConstructed = errors.New(
	"GetLatestTableOrderQuery must be created via NewGetLatestTableOrderQuery constructor",
)

// GetLatestTableOrderQuery retrieves the current order of a table: the most
// recently placed one, regardless of status or payment.
type GetLatestTableOrderQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	tableID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLatestTableOrderQuery creates a query for a table's latest order.
func NewGetLatestTableOrderQuery(restaurantID, tableID kernel.UUID) (GetLatestTableOrderQuery, error) {
	query := GetLatestTableOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setRestaurantID(restaurantID),
		query.setTableID(tableID),
	); err != nil {
		return GetLatestTableOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLatestTableOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestTableOrderQueryIsNotConstructed)
}

// RestaurantID returns the restaurant scope of the query.
func (q GetLatestTableOrderQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// TableID returns the table whose latest order is requested.
func (q GetLatestTableOrderQuery) TableID() kernel.UUID {
	return q.tableID
}

func (q *GetLatestTableOrderQuery) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	q.restaurantID = restaurantID
	return nil
}

func (q *GetLatestTableOrderQuery) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	q.tableID = tableID
	return nil
}
