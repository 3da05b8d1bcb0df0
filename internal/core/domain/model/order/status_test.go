package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", order.Pending.String())
	assert.Equal(t, "assigned", order.Assigned.String())
	assert.Equal(t, "picked", order.Picked.String())
	assert.Equal(t, "delivered", order.Delivered.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Pending.Validate())
	require.NoError(t, order.Assigned.Validate())
	require.NoError(t, order.Picked.Validate())
	require.NoError(t, order.Delivered.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestStatusFromString(t *testing.T) {
	for _, tc := range []struct {
		raw  string
		want order.Status
	}{
		{"pending", order.Pending},
		{"assigned", order.Assigned},
		{"picked", order.Picked},
		{"delivered", order.Delivered},
	} {
		got, err := order.StatusFromString(tc.raw)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	_, err := order.StatusFromString("cancelled")
	require.Error(t, err)
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("assign_only_from_pending", func(t *testing.T) {
		next, err := order.Pending.Assign()
		require.NoError(t, err)
		assert.Equal(t, order.Assigned, next)

		for _, s := range []order.Status{order.Assigned, order.Picked, order.Delivered, order.Unknown} {
			_, err := s.Assign()
			require.ErrorIs(t, err, errs.ErrInvalidState, s.String())
		}
	})

	t.Run("pick_only_from_assigned", func(t *testing.T) {
		next, err := order.Assigned.Pick()
		require.NoError(t, err)
		assert.Equal(t, order.Picked, next)

		for _, s := range []order.Status{order.Pending, order.Picked, order.Delivered} {
			_, err := s.Pick()
			require.ErrorIs(t, err, errs.ErrInvalidState, s.String())
		}
	})

	t.Run("deliver_only_from_picked", func(t *testing.T) {
		next, err := order.Picked.Deliver()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)

		for _, s := range []order.Status{order.Pending, order.Assigned, order.Delivered} {
			_, err := s.Deliver()
			require.ErrorIs(t, err, errs.ErrInvalidState, s.String())
		}
	})
}

func TestStatus_ValidateCanHaveAssignee(t *testing.T) {
	require.NoError(t, order.Pending.ValidateCanHaveAssignee(false))
	require.Error(t, order.Pending.ValidateCanHaveAssignee(true))

	for _, s := range []order.Status{order.Assigned, order.Picked, order.Delivered} {
		require.NoError(t, s.ValidateCanHaveAssignee(true), s.String())
		require.Error(t, s.ValidateCanHaveAssignee(false), s.String())
	}
}
