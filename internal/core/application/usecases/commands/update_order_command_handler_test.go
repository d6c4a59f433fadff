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

func TestUpdateOrderCommandHandler_Handle_StatusChange(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	existing := newTestOrder(t, restaurantID)
	status := order.InProgress
	cmd, err := commands.NewUpdateOrderCommand(existing.ID(), restaurantID, &status, nil, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, restaurantID, existing.ID()).
			Return(existing, nil).Once(),
		orderRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.InProgress, existing.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_SameStatusNoHistory(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	existing := newTestOrder(t, restaurantID)
	before := len(existing.UncommittedHistory())
	status := order.Pending
	cmd, err := commands.NewUpdateOrderCommand(existing.ID(), restaurantID, &status, nil, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetForUpdate", mock.Anything, restaurantID, existing.ID()).Return(existing, nil).Once()
	orderRepo.On("Update", mock.Anything, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Pending, existing.Status())
	assert.Len(t, existing.UncommittedHistory(), before)
}

func TestUpdateOrderCommandHandler_Handle_TerminalOrderRejected(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	existing := newTestOrder(t, restaurantID)
	require.NoError(t, existing.Cancel(time.Now().UTC()))

	paid := true
	cmd, err := commands.NewUpdateOrderCommand(existing.ID(), restaurantID, nil, &paid, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetForUpdate", mock.Anything, restaurantID, existing.ID()).Return(existing, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.False(t, existing.Paid())
}

func TestUpdateOrderCommandHandler_Handle_ReplaceItems(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	existing := newTestOrderWithItems(t, restaurantID, kernel.NewUUID())
	menuItemID := kernel.NewUUID()
	lines := []commands.ItemLine{newTestLine(t, menuItemID, 4)}
	cmd, err := commands.NewUpdateOrderCommand(existing.ID(), restaurantID, nil, nil, lines)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetForUpdate", mock.Anything, restaurantID, existing.ID()).Return(existing, nil).Once()
	uow.On("MenuItemRepository").Return(menuRepo).Once()
	menuRepo.On("GetAllByIDs", mock.Anything, []kernel.UUID{menuItemID}).
		Return([]*menu.MenuItem{newTestMenuItem(t, menuItemID, restaurantID)}, nil).Once()
	orderRepo.On("Update", mock.Anything, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Len(t, existing.Items(), 1)
	assert.Equal(t, menuItemID, existing.Items()[0].MenuItemID())
	assert.Equal(t, 4, existing.Items()[0].Quantity())
}

func TestUpdateOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	status := order.Completed
	cmd, err := commands.NewUpdateOrderCommand(orderID, restaurantID, &status, nil, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetForUpdate", mock.Anything, restaurantID, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderId", orderID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
