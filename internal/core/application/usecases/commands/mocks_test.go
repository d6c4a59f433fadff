package commands_test

import (
	"context"
	"time"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/menu"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, restaurantID, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, restaurantID, id)
	return orderResult(args)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, restaurantID, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, restaurantID, id)
	return orderResult(args)
}

func (m *MockOrderRepository) GetByItem(ctx context.Context, restaurantID, itemID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, restaurantID, itemID)
	return orderResult(args)
}

func (m *MockOrderRepository) GetLatestForTable(
	ctx context.Context, restaurantID, tableID kernel.UUID,
) (*order.Order, error) {
	args := m.Called(ctx, restaurantID, tableID)
	return orderResult(args)
}

func (m *MockOrderRepository) GetLatestForTableForUpdate(
	ctx context.Context, restaurantID, tableID kernel.UUID,
) (*order.Order, error) {
	args := m.Called(ctx, restaurantID, tableID)
	return orderResult(args)
}

func (m *MockOrderRepository) GetAllForRestaurant(
	ctx context.Context, restaurantID kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, restaurantID)
	return ordersResult(args)
}

func (m *MockOrderRepository) GetUnpaidPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	return ordersResult(args)
}

func orderResult(args mock.Arguments) (*order.Order, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func ordersResult(args mock.Arguments) ([]*order.Order, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.MenuItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.MenuItem), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ MockOrderUoW }

func (m *MockUoW) MenuItemRepository() ports.MenuItemRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuItemRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
