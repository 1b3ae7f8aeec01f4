package queries_test

import (
	"context"
	"testing"

	"ordersystem/internal/core/application/usecases/queries"
	"ordersystem/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAvailableProductsQueryHandler_Handle(t *testing.T) {
	t.Run("catalog products are enriched", func(t *testing.T) {
		ctx := context.Background()
		validator := new(MockProductValidator)
		validator.On("AvailableProducts", ctx).
			Return([]string{"PROD-001", "PROD-042"}, nil).Once()

		result, err := queries.NewGetAvailableProductsQueryHandler(validator).
			Handle(ctx, queries.NewGetAvailableProductsQuery())

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, queries.ProductResponse{ID: "PROD-001", Name: "Wireless Mouse", Icon: "🖱️"}, result[0])
		// unrecognized ids keep their identifier as a display name
		assert.Equal(t, queries.ProductResponse{ID: "PROD-042", Name: "PROD-042", Icon: "📦"}, result[1])
	})

	t.Run("validator unavailable", func(t *testing.T) {
		ctx := context.Background()
		validator := new(MockProductValidator)
		validator.On("AvailableProducts", ctx).
			Return(nil, errs.NewServiceUnavailableError("product-validator")).Once()

		_, err := queries.NewGetAvailableProductsQueryHandler(validator).
			Handle(ctx, queries.NewGetAvailableProductsQuery())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrServiceUnavailable)
	})

	t.Run("invalid query", func(t *testing.T) {
		var query queries.GetAvailableProductsQuery

		_, err := queries.NewGetAvailableProductsQueryHandler(new(MockProductValidator)).
			Handle(context.Background(), query)

		require.Error(t, err)
		assert.Equal(t, queries.ErrGetAvailableProductsQueryIsNotConstructed, err)
	})
}
