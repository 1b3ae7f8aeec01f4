package queries

import (
	"errors"
	"time"

	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/core/domain/model/order"
	"ordersystem/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order by its identifier.
//
// Example:
//
//	id, _ := kernel.OrderIDFromString("ORD-1A2B3C4D")
//	query, err := NewGetOrderQuery(id)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the order with the given identifier.
func NewGetOrderQuery(orderID kernel.OrderID) (GetOrderQuery, error) {
	getQuery := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := getQuery.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return getQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// OrderResponse is the flat read model of an order. Status is the
// time-derived status at the moment the query ran.
type OrderResponse struct {
	ID        kernel.OrderID
	ProductID string
	Email     string
	Quantity  int
	Status    order.Status
	CreatedAt time.Time
}

func newOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID(),
		ProductID: o.ProductID(),
		Email:     o.Email(),
		Quantity:  o.Quantity(),
		Status:    o.Status(),
		CreatedAt: o.CreatedAt(),
	}
}
