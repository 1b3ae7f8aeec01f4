// Package ports defines the interfaces between the application core and its
// adapters. These interfaces establish contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/core/domain/model/order"
)

// OrderRepository is the storage contract for order aggregates. The backing
// store is the single source of truth for orders; no other component holds
// independent order state.
//
// Implementations must support safe concurrent use: two concurrent Cancel
// calls on the same id must both observe a consistent terminal state, and
// GetAll must never observe a partially-constructed record. Cancel is
// therefore a repository operation executed atomically against the stored
// record rather than a load-modify-store sequence in the caller.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid; an already-used identifier is rejected.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if the id is absent.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// Cancel atomically marks the stored order as cancelled and returns
	// the updated aggregate. Cancellation is idempotent: cancelling an
	// already-cancelled order succeeds and returns the same terminal
	// state. Returns an ObjectNotFoundError if the id is absent, in which
	// case nothing is mutated.
	Cancel(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAll retrieves all orders sorted by creation time descending
	// (most recent first).
	GetAll(ctx context.Context) ([]*order.Order, error)
}
