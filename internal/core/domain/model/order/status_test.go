package order_test

import (
	"fmt"
	"testing"
	"time"

	"ordersystem/internal/core/domain/model/order"
	"ordersystem/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Accepted))
		assert.Equal(t, 2, int(order.OnDelivery))
		assert.Equal(t, 3, int(order.Delivered))
		assert.Equal(t, 4, int(order.Cancelled))
	})
}

func TestDeriveStatus(t *testing.T) {
	t.Run("should derive status from elapsed time", func(t *testing.T) {
		testCases := []struct {
			name     string
			elapsed  time.Duration
			expected order.Status
		}{
			{"at creation", 0, order.Accepted},
			{"just before on_delivery threshold", 10 * time.Second, order.Accepted},
			{"just after on_delivery threshold", 10*time.Second + time.Millisecond, order.OnDelivery},
			{"mid delivery window", 20 * time.Second, order.OnDelivery},
			{"at delivered threshold", 25 * time.Second, order.OnDelivery},
			{"just after delivered threshold", 25*time.Second + time.Millisecond, order.Delivered},
			{"long after creation", time.Hour, order.Delivered},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.expected, order.DeriveStatus(false, tc.elapsed))
			})
		}
	})

	t.Run("cancellation short-circuits time-based derivation", func(t *testing.T) {
		elapsed := []time.Duration{0, 5 * time.Second, 15 * time.Second, 30 * time.Second, time.Hour}

		for _, e := range elapsed {
			t.Run(e.String(), func(t *testing.T) {
				assert.Equal(t, order.Cancelled, order.DeriveStatus(true, e))
			})
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Accepted,
			order.OnDelivery,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out-of-range status", func(t *testing.T) {
		err := order.Status(42).Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should render wire-format names", func(t *testing.T) {
		assert.Equal(t, "accepted", order.Accepted.String())
		assert.Equal(t, "on_delivery", order.OnDelivery.String())
		assert.Equal(t, "delivered", order.Delivered.String())
		assert.Equal(t, "cancelled", order.Cancelled.String())
		assert.Equal(t, "unknown", order.Unknown.String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid wire-format names", func(t *testing.T) {
		testCases := map[string]order.Status{
			"accepted":    order.Accepted,
			"on_delivery": order.OnDelivery,
			"delivered":   order.Delivered,
			"cancelled":   order.Cancelled,
		}

		for s, expected := range testCases {
			t.Run(s, func(t *testing.T) {
				status, err := order.StatusFromString(s)

				require.NoError(t, err)
				assert.Equal(t, expected, status)
			})
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, s := range []string{"", "unknown", "Accepted", "shipped"} {
			t.Run(fmt.Sprintf("rejects %q", s), func(t *testing.T) {
				status, err := order.StatusFromString(s)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Equal(t, order.Unknown, status)
			})
		}
	})
}
