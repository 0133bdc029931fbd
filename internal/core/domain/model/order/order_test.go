package order_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, quantity int, price string) order.Line {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), quantity, mustMoney(t, price))
	require.NoError(t, err)
	return line
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validCustomerID := kernel.NewUUID()

	t.Run("creates order with derived total and New status", func(t *testing.T) {
		lines := []order.Line{
			mustLine(t, 2, "10.50"),
			mustLine(t, 1, "15.00"),
		}

		o, err := order.NewOrder(validID, validCustomerID, lines, "extra cheese")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.CustomerID().IsEqual(validCustomerID))
		assert.Equal(t, order.New, o.Status())
		assert.Equal(t, "36.00", o.TotalAmount().String())
		assert.Equal(t, "extra cheese", o.Notes())
		assert.Len(t, o.Lines(), 2)
		assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Minute)
	})

	t.Run("fails with empty line list", func(t *testing.T) {
		o, err := order.NewOrder(validID, validCustomerID, nil, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrOrderLinesAreEmpty)
	})

	t.Run("fails with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validCustomerID, []order.Line{mustLine(t, 1, "5.00")}, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("fails with invalid customer ID", func(t *testing.T) {
		var invalidCustomerID kernel.UUID

		o, err := order.NewOrder(validID, invalidCustomerID, []order.Line{mustLine(t, 1, "5.00")}, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customerId")
	})

	t.Run("fails with an unconstructed line", func(t *testing.T) {
		o, err := order.NewOrder(validID, validCustomerID, []order.Line{{}}, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrLineIsNotConstructed)
	})

	t.Run("collects multiple validation errors", func(t *testing.T) {
		var invalidID, invalidCustomerID kernel.UUID

		_, err := order.NewOrder(invalidID, invalidCustomerID, nil, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.ErrorIs(t, err, order.ErrOrderLinesAreEmpty)
	})

	t.Run("caller cannot mutate the line set afterwards", func(t *testing.T) {
		lines := []order.Line{mustLine(t, 1, "5.00")}
		o, err := order.NewOrder(validID, validCustomerID, lines, "")
		require.NoError(t, err)

		got := o.Lines()
		got[0] = order.Line{}

		require.NoError(t, o.Lines()[0].Validate())
		assert.Equal(t, "5.00", o.TotalAmount().String())
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	createdAt := time.Now().UTC().Add(-time.Hour)
	lines := []order.Line{mustLine(t, 2, "10.00")}

	t.Run("restores a persisted order", func(t *testing.T) {
		o, err := order.RestoreOrder(id, customerID, createdAt, mustMoney(t, "20.00"), order.Preparing, "no onions", lines)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, "20.00", o.TotalAmount().String())
	})

	t.Run("rejects a stored total that disagrees with the lines", func(t *testing.T) {
		_, err := order.RestoreOrder(id, customerID, createdAt, mustMoney(t, "19.99"), order.Preparing, "", lines)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrTotalAmountMismatch)
	})

	t.Run("rejects an invalid stored status", func(t *testing.T) {
		_, err := order.RestoreOrder(id, customerID, createdAt, mustMoney(t, "20.00"), order.Unknown, "", lines)

		require.Error(t, err)
	})
}

func TestOrderTransitionTo(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Line{mustLine(t, 1, "12.00")}, "")
		require.NoError(t, err)
		return o
	}

	t.Run("walks the full lifecycle one step at a time", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.TransitionTo(order.Preparing))
		assert.Equal(t, order.Preparing, o.Status())

		require.NoError(t, o.TransitionTo(order.Ready))
		assert.Equal(t, order.Ready, o.Status())

		require.NoError(t, o.TransitionTo(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("rejects skipping ahead and keeps the status", func(t *testing.T) {
		o := newOrder(t)

		err := o.TransitionTo(order.Ready)

		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.New, o.Status())
	})

	t.Run("rejects staying at the same status", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.TransitionTo(order.Preparing))

		err := o.TransitionTo(order.Preparing)

		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("rejects moving backward", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.TransitionTo(order.Preparing))

		err := o.TransitionTo(order.New)

		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("repeated invalid requests never mutate the order", func(t *testing.T) {
		o := newOrder(t)

		for range 5 {
			require.Error(t, o.TransitionTo(order.Delivered))
		}
		assert.Equal(t, order.New, o.Status())
		assert.Equal(t, "12.00", o.TotalAmount().String())
	})

	t.Run("no transition leaves a terminal order", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.TransitionTo(order.Preparing))
		require.NoError(t, o.TransitionTo(order.Ready))
		require.NoError(t, o.TransitionTo(order.Delivered))

		for _, target := range []order.Status{order.New, order.Preparing, order.Ready, order.Delivered} {
			require.Error(t, o.TransitionTo(target), target)
		}
		assert.Equal(t, order.Delivered, o.Status())
	})
}
