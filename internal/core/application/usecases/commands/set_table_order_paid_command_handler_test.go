package commands_test

import (
	"testing"
	"time"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetTableOrderPaidCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	tableID := kernel.NewUUID()
	existing := newTestOrder(t, restaurantID)
	cmd, err := commands.NewSetTableOrderPaidCommand(restaurantID, tableID, true)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetLatestForTableForUpdate", mock.Anything, restaurantID, tableID).
			Return(existing, nil).Once(),
		orderRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetTableOrderPaidCommandHandler(factory)
	orderID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, existing.ID(), orderID)
	assert.True(t, existing.Paid())
	assert.Len(t, existing.UncommittedHistory(), 1) // only the creation entry
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetTableOrderPaidCommandHandler_Handle_TerminalOrderAllowed(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	tableID := kernel.NewUUID()
	existing := newTestOrder(t, restaurantID)
	require.NoError(t, existing.Cancel(time.Now().UTC()))
	cmd, err := commands.NewSetTableOrderPaidCommand(restaurantID, tableID, true)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetLatestForTableForUpdate", mock.Anything, restaurantID, tableID).
		Return(existing, nil).Once()
	orderRepo.On("Update", mock.Anything, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetTableOrderPaidCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, existing.Paid())
}

func TestSetTableOrderPaidCommandHandler_Handle_NoOrderForTable(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	tableID := kernel.NewUUID()
	cmd, err := commands.NewSetTableOrderPaidCommand(restaurantID, tableID, false)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetLatestForTableForUpdate", mock.Anything, restaurantID, tableID).
		Return(nil, errs.NewObjectNotFoundError("tableId", tableID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetTableOrderPaidCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
