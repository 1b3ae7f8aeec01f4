package queries_test

import (
	"context"
	"testing"
	"time"

	"ordersystem/internal/core/application/usecases/queries"
	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllOrdersQueryHandler_Handle(t *testing.T) {
	t.Run("empty store yields empty slice", func(t *testing.T) {
		ctx := context.Background()
		repo := new(MockOrderRepository)
		repo.On("GetAll", ctx).Return([]*order.Order{}, nil).Once()

		result, err := queries.NewGetAllOrdersQueryHandler(repo).
			Handle(ctx, queries.NewGetAllOrdersQuery())

		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("store ordering is preserved", func(t *testing.T) {
		ctx := context.Background()
		now := time.Now().UTC()

		newest, err := order.RestoreOrder(kernel.NewOrderID(), "PROD-001", "a@b.com", 1, now, false)
		require.NoError(t, err)
		oldest, err := order.RestoreOrder(kernel.NewOrderID(), "PROD-002", "b@c.com", 2,
			now.Add(-time.Minute), true)
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("GetAll", ctx).Return([]*order.Order{newest, oldest}, nil).Once()

		result, err := queries.NewGetAllOrdersQueryHandler(repo).
			Handle(ctx, queries.NewGetAllOrdersQuery())

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.True(t, result[0].ID.IsEqual(newest.ID()))
		assert.True(t, result[1].ID.IsEqual(oldest.ID()))
		assert.Equal(t, order.Accepted, result[0].Status)
		assert.Equal(t, order.Cancelled, result[1].Status)
	})

	t.Run("invalid query", func(t *testing.T) {
		var query queries.GetAllOrdersQuery

		_, err := queries.NewGetAllOrdersQueryHandler(new(MockOrderRepository)).
			Handle(context.Background(), query)

		require.Error(t, err)
		assert.Equal(t, queries.ErrGetAllOrdersQueryIsNotConstructed, err)
	})
}
