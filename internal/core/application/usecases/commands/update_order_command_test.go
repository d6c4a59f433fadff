package commands_test

import (
	"testing"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand_StatusOnly(t *testing.T) {
	status := order.InProgress
	cmd, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), &status, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, order.InProgress, *cmd.Status())
	assert.Nil(t, cmd.Paid())
	assert.False(t, cmd.HasLines())
}

func TestNewUpdateOrderCommand_PaidOnly(t *testing.T) {
	paid := true
	cmd, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), nil, &paid, nil)
	require.NoError(t, err)
	assert.Nil(t, cmd.Status())
	assert.True(t, *cmd.Paid())
}

func TestNewUpdateOrderCommand_LinesOnly(t *testing.T) {
	lines := []commands.ItemLine{newTestLine(t, kernel.NewUUID(), 2)}
	cmd, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), nil, nil, lines)
	require.NoError(t, err)
	assert.True(t, cmd.HasLines())
	assert.Len(t, cmd.Lines(), 1)
}

func TestNewUpdateOrderCommand_NoFields(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewUpdateOrderCommand_EmptyLines(t *testing.T) {
	status := order.Completed
	_, err := commands.NewUpdateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), &status, nil, []commands.ItemLine{},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewUpdateOrderCommand_InvalidStatus(t *testing.T) {
	status := order.Unknown
	_, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), &status, nil, nil)
	require.Error(t, err)
}
