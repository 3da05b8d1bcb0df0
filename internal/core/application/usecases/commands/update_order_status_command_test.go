package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewUpdateOrderStatusCommand(id, order.Picked)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, order.Picked, cmd.Status())
	})

	t.Run("invalid_status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Unknown)

		require.Error(t, err)
	})

	t.Run("invalid_id", func(t *testing.T) {
		var zero kernel.UUID

		_, err := commands.NewUpdateOrderStatusCommand(zero, order.Picked)

		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var cmd commands.UpdateOrderStatusCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
	})
}
