package orderrepo

import (
	"context"
	"sort"
	"sync"

	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/core/domain/model/order"
	"ordersystem/internal/pkg/errs"
)

// InMemoryOrderRepository implements OrderRepository with a mutex-guarded
// map. Cancel mutates the stored record under the write lock, which gives
// the per-record serializability the port requires without a database.
type InMemoryOrderRepository struct {
	mu      sync.RWMutex
	records map[string]orderRecord
}

// NewInMemoryOrderRepository creates an empty in-memory order repository.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		records: make(map[string]orderRecord),
	}
}

// Add saves a new order to the store. An already-used identifier is
// rejected with a ValueIsInvalidError.
func (r *InMemoryOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	record := fromDomain(aggregate)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[record.ID]; exists {
		return errs.NewValueIsInvalidError("order.ID")
	}

	r.records[record.ID] = record
	return nil
}

// Get retrieves an order by ID.
func (r *InMemoryOrderRepository) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	record, exists := r.records[id.String()]
	r.mu.RUnlock()

	if !exists {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return toDomain(record)
}

// Cancel atomically marks the stored order as cancelled and returns the
// updated aggregate. Cancelling an already-cancelled order is a no-op that
// succeeds with the same terminal state.
func (r *InMemoryOrderRepository) Cancel(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	record, exists := r.records[id.String()]
	if !exists {
		r.mu.Unlock()
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	record.Cancelled = true
	r.records[id.String()] = record
	r.mu.Unlock()

	return toDomain(record)
}

// GetAll retrieves all orders sorted by creation time descending.
func (r *InMemoryOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	snapshot := make([]orderRecord, 0, len(r.records))
	for _, record := range r.records {
		snapshot = append(snapshot, record)
	}
	r.mu.RUnlock()

	sort.Slice(snapshot, func(i, j int) bool {
		if snapshot[i].CreatedAt.Equal(snapshot[j].CreatedAt) {
			return snapshot[i].ID < snapshot[j].ID
		}
		return snapshot[i].CreatedAt.After(snapshot[j].CreatedAt)
	})

	orders := make([]*order.Order, 0, len(snapshot))
	for _, record := range snapshot {
		o, err := toDomain(record)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
