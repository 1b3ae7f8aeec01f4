// Package orderrepo provides the in-memory repository for order aggregates.
// Orders live for the lifetime of the process; the store is the single
// source of truth and supports safe concurrent use.
package orderrepo

import (
	"time"

	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/core/domain/model/order"
)

// orderRecord is the stored representation of an order. Records are plain
// values copied in and out under the store lock, so callers can never alias
// the stored state through a returned aggregate.
type orderRecord struct {
	ID        string
	ProductID string
	Email     string
	Quantity  int
	CreatedAt time.Time
	Cancelled bool
}

func fromDomain(aggregate *order.Order) orderRecord {
	return orderRecord{
		ID:        aggregate.ID().String(),
		ProductID: aggregate.ProductID(),
		Email:     aggregate.Email(),
		Quantity:  aggregate.Quantity(),
		CreatedAt: aggregate.CreatedAt(),
		Cancelled: aggregate.IsCancelled(),
	}
}

func toDomain(record orderRecord) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(record.ID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, record.ProductID, record.Email, record.Quantity,
		record.CreatedAt, record.Cancelled)
}
