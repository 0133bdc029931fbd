package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderStatusCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	cmd, err := commands.NewTransitionOrderStatusCommand(orderID, "Preparing")
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, order.Preparing, cmd.Target())
}

func TestNewTransitionOrderStatusCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewTransitionOrderStatusCommand(invalidID, "Preparing")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewTransitionOrderStatusCommand_UnknownLabel(t *testing.T) {
	_, err := commands.NewTransitionOrderStatusCommand(kernel.NewUUID(), "Cooking")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewTransitionOrderStatusCommand_LabelIsCaseSensitive(t *testing.T) {
	_, err := commands.NewTransitionOrderStatusCommand(kernel.NewUUID(), "preparing")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
