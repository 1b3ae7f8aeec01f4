package queries

import (
	"context"

	"ordersystem/internal/core/ports"
)

// GetAllOrdersQueryHandler reads the full order list from the order store.
// Ordering (creation time, newest first) is the store's responsibility and
// is passed through unchanged.
type GetAllOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetAllOrdersQueryHandler creates a handler for order-list queries.
func NewGetAllOrdersQueryHandler(orders ports.OrderRepository) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orders: orders}
}

// Handle executes the query. An empty store yields an empty slice, not nil.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(all))
	for _, o := range all {
		responses = append(responses, newOrderResponse(o))
	}

	return responses, nil
}
