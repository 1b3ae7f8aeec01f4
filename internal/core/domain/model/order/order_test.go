package order_test

import (
	"testing"
	"time"

	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/core/domain/model/order"
	"ordersystem/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("should create a valid order", func(t *testing.T) {
		id := kernel.NewOrderID()

		o, err := order.NewOrder(id, "PROD-001", "a@b.com", 2)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "PROD-001", o.ProductID())
		assert.Equal(t, "a@b.com", o.Email())
		assert.Equal(t, 2, o.Quantity())
		assert.False(t, o.IsCancelled())
		assert.Equal(t, order.Accepted, o.Status())
		assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Second)
	})

	t.Run("should reject a zero-value identifier", func(t *testing.T) {
		var id kernel.OrderID

		_, err := order.NewOrder(id, "PROD-001", "a@b.com", 1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject an empty product id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewOrderID(), "", "a@b.com", 1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject an empty email", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewOrderID(), "PROD-001", "   ", 1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject non-positive quantities", func(t *testing.T) {
		for _, quantity := range []int{0, -1, -100} {
			_, err := order.NewOrder(kernel.NewOrderID(), "PROD-001", "a@b.com", quantity)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should collect all validation errors", func(t *testing.T) {
		var id kernel.OrderID

		_, err := order.NewOrder(id, "", "", 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should rebuild an order with its original timestamp", func(t *testing.T) {
		createdAt := time.Now().UTC().Add(-time.Minute)

		o, err := order.RestoreOrder(kernel.NewOrderID(), "PROD-001", "a@b.com", 1, createdAt, false)

		require.NoError(t, err)
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should preserve the cancellation flag", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewOrderID(), "PROD-001", "a@b.com", 1, time.Now().UTC(), true)

		require.NoError(t, err)
		assert.True(t, o.IsCancelled())
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject a directly instantiated order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should reject a nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_StatusAt(t *testing.T) {
	t.Run("should progress with elapsed time", func(t *testing.T) {
		createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		o, err := order.RestoreOrder(kernel.NewOrderID(), "PROD-001", "a@b.com", 1, createdAt, false)
		require.NoError(t, err)

		assert.Equal(t, order.Accepted, o.StatusAt(createdAt.Add(5*time.Second)))
		assert.Equal(t, order.OnDelivery, o.StatusAt(createdAt.Add(11*time.Second)))
		assert.Equal(t, order.Delivered, o.StatusAt(createdAt.Add(26*time.Second)))
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancellation is terminal at any elapsed time", func(t *testing.T) {
		createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		o, err := order.RestoreOrder(kernel.NewOrderID(), "PROD-001", "a@b.com", 1, createdAt, false)
		require.NoError(t, err)

		o.Cancel()

		assert.True(t, o.IsCancelled())
		assert.Equal(t, order.Cancelled, o.StatusAt(createdAt))
		assert.Equal(t, order.Cancelled, o.StatusAt(createdAt.Add(26*time.Second)))
		assert.Equal(t, order.Cancelled, o.StatusAt(createdAt.Add(24*time.Hour)))
	})

	t.Run("cancellation is idempotent", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewOrderID(), "PROD-001", "a@b.com", 1)
		require.NoError(t, err)

		o.Cancel()
		o.Cancel()
		o.Cancel()

		assert.True(t, o.IsCancelled())
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("should compare orders by identifier", func(t *testing.T) {
		id := kernel.NewOrderID()
		a, err := order.NewOrder(id, "PROD-001", "a@b.com", 1)
		require.NoError(t, err)
		b, err := order.NewOrder(id, "PROD-002", "c@d.com", 5)
		require.NoError(t, err)
		c, err := order.NewOrder(kernel.NewOrderID(), "PROD-001", "a@b.com", 1)
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
		assert.False(t, a.IsEqual(nil))
	})
}
