package queries_test

import (
	"testing"

	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_ValidInput(t *testing.T) {
	restaurantID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	query, err := queries.NewGetOrderQuery(restaurantID, orderID)
	require.NoError(t, err)
	assert.Equal(t, restaurantID, query.RestaurantID())
	assert.Equal(t, orderID, query.OrderID())
}

func TestNewGetOrderQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOrderQuery_NotConstructed(t *testing.T) {
	var query queries.GetOrderQuery
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetOrdersQuery_ValidInput(t *testing.T) {
	restaurantID := kernel.NewUUID()
	query, err := queries.NewGetOrdersQuery(restaurantID)
	require.NoError(t, err)
	assert.Equal(t, restaurantID, query.RestaurantID())
}

func TestNewGetOrdersQuery_InvalidRestaurantID(t *testing.T) {
	_, err := queries.NewGetOrdersQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetOrdersQuery_NotConstructed(t *testing.T) {
	var query queries.GetOrdersQuery
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}

func TestNewGetLatestTableOrderQuery_ValidInput(t *testing.T) {
	restaurantID := kernel.NewUUID()
	tableID := kernel.NewUUID()
	query, err := queries.NewGetLatestTableOrderQuery(restaurantID, tableID)
	require.NoError(t, err)
	assert.Equal(t, restaurantID, query.RestaurantID())
	assert.Equal(t, tableID, query.TableID())
}

func TestNewGetLatestTableOrderQuery_InvalidTableID(t *testing.T) {
	_, err := queries.NewGetLatestTableOrderQuery(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
