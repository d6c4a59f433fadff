package commands_test

import (
	"testing"
	"time"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/menu"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpsertTableOrderCommandHandler_Handle_UpdatesOpenOrder(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	tableID := kernel.NewUUID()
	existing := newTestOrderWithItems(t, restaurantID, kernel.NewUUID())
	menuItemID := kernel.NewUUID()
	lines := []commands.ItemLine{newTestLine(t, menuItemID, 2)}
	cmd, err := commands.NewUpsertTableOrderCommand(
		kernel.NewUUID(), restaurantID, tableID, nil, nil, nil, nil, lines,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MenuItemRepository").Return(menuRepo).Once()
	menuRepo.On("GetAllByIDs", mock.Anything, []kernel.UUID{menuItemID}).
		Return([]*menu.MenuItem{newTestMenuItem(t, menuItemID, restaurantID)}, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetLatestForTableForUpdate", mock.Anything, restaurantID, tableID).
		Return(existing, nil).Once()
	orderRepo.On("Update", mock.Anything, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpsertTableOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.False(t, result.Created)
	assert.Equal(t, existing.ID(), result.OrderID)
	require.Len(t, existing.Items(), 1)
	assert.Equal(t, menuItemID, existing.Items()[0].MenuItemID())
	orderRepo.AssertExpectations(t)
}

func TestUpsertTableOrderCommandHandler_Handle_MergesStatusAndPaid(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	tableID := kernel.NewUUID()
	existing := newTestOrderWithItems(t, restaurantID, kernel.NewUUID())
	menuItemID := kernel.NewUUID()
	lines := []commands.ItemLine{newTestLine(t, menuItemID, 1)}

	status := order.InProgress
	paid := true
	cmd, err := commands.NewUpsertTableOrderCommand(
		kernel.NewUUID(), restaurantID, tableID, nil, nil, &status, &paid, lines,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MenuItemRepository").Return(menuRepo).Once()
	menuRepo.On("GetAllByIDs", mock.Anything, mock.Anything).
		Return([]*menu.MenuItem{newTestMenuItem(t, menuItemID, restaurantID)}, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetLatestForTableForUpdate", mock.Anything, restaurantID, tableID).
		Return(existing, nil).Once()
	orderRepo.On("Update", mock.Anything, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpsertTableOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.False(t, result.Created)
	assert.Equal(t, order.InProgress, existing.Status())
	assert.True(t, existing.Paid())
	require.Len(t, existing.UncommittedHistory(), 2)
	assert.Equal(t, order.InProgress, existing.UncommittedHistory()[1].Status())
}

func TestUpsertTableOrderCommandHandler_Handle_PaidOrderStartsNew(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	tableID := kernel.NewUUID()
	existing := newTestOrderWithItems(t, restaurantID, kernel.NewUUID())
	existing.SetPaid(true)

	newOrderID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()
	lines := []commands.ItemLine{newTestLine(t, menuItemID, 1)}
	cmd, err := commands.NewUpsertTableOrderCommand(
		newOrderID, restaurantID, tableID, nil, nil, nil, nil, lines,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MenuItemRepository").Return(menuRepo).Once()
	menuRepo.On("GetAllByIDs", mock.Anything, mock.Anything).
		Return([]*menu.MenuItem{newTestMenuItem(t, menuItemID, restaurantID)}, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetLatestForTableForUpdate", mock.Anything, restaurantID, tableID).
		Return(existing, nil).Once()
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpsertTableOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, result.Created)
	assert.Equal(t, newOrderID, result.OrderID)
	orderRepo.AssertExpectations(t)
}

func TestUpsertTableOrderCommandHandler_Handle_TerminalOrderStartsNew(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	tableID := kernel.NewUUID()
	existing := newTestOrderWithItems(t, restaurantID, kernel.NewUUID())
	require.NoError(t, existing.Cancel(time.Now().UTC()))

	newOrderID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()
	lines := []commands.ItemLine{newTestLine(t, menuItemID, 1)}
	cmd, err := commands.NewUpsertTableOrderCommand(
		newOrderID, restaurantID, tableID, nil, nil, nil, nil, lines,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MenuItemRepository").Return(menuRepo).Once()
	menuRepo.On("GetAllByIDs", mock.Anything, mock.Anything).
		Return([]*menu.MenuItem{newTestMenuItem(t, menuItemID, restaurantID)}, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetLatestForTableForUpdate", mock.Anything, restaurantID, tableID).
		Return(existing, nil).Once()
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpsertTableOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, result.Created)
}

func TestUpsertTableOrderCommandHandler_Handle_NoPriorOrderCreates(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	tableID := kernel.NewUUID()
	newOrderID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()
	lines := []commands.ItemLine{newTestLine(t, menuItemID, 1)}
	cmd, err := commands.NewUpsertTableOrderCommand(
		newOrderID, restaurantID, tableID, nil, nil, nil, nil, lines,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MenuItemRepository").Return(menuRepo).Once()
	menuRepo.On("GetAllByIDs", mock.Anything, mock.Anything).
		Return([]*menu.MenuItem{newTestMenuItem(t, menuItemID, restaurantID)}, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetLatestForTableForUpdate", mock.Anything, restaurantID, tableID).
		Return(nil, errs.NewObjectNotFoundError("tableId", tableID)).Once()
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpsertTableOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, newOrderID, result.OrderID)
}
