package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods. This
	// ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a purchase order in the system. It is the aggregate root
// that manages the order lifecycle from acceptance through delivery or
// cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, assigned exactly once at creation
//   - Must have a product identifier and a contact email
//   - Quantity must be positive (greater than 0)
//   - The creation timestamp is captured once and never changes
//   - Status is derived from elapsed time at read time, never stored for
//     the non-terminal states
//   - Cancellation is terminal and idempotent
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.OrderID

	// productID identifies the purchased product, validated upstream
	productID string

	// email is the caller-supplied contact address
	email string

	// quantity is the number of units ordered (must be positive)
	quantity int

	// createdAt anchors time-based status derivation
	createdAt time.Time

	// cancelled is the explicit terminal override for status derivation
	cancelled bool

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order with a freshly captured creation timestamp.
// This is the creation path used by the order placement flow: the caller is
// responsible for upstream product validation, and for well-formed input
// this constructor only fails on invariant violations.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid)
//   - productID: Identifier of the purchased product (must not be empty)
//   - email: Contact address for notifications (must not be empty)
//   - quantity: Number of units (must be positive)
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewOrderID(), "PROD-001", "a@b.com", 1)
//	if err != nil {
//	    // Handle validation error
//	}
//
// The new order starts in the Accepted status and progresses with elapsed
// time (see DeriveStatus).
func NewOrder(id kernel.OrderID, productID, email string, quantity int) (*Order, error) {
	return RestoreOrder(id, productID, email, quantity, time.Now().UTC(), false)
}

// RestoreOrder reconstructs an Order from previously captured state. The
// storage adapter uses it to rebuild aggregates on read so that stored
// records never bypass invariant checks; tests use it to anchor createdAt
// in the past.
func RestoreOrder(
	id kernel.OrderID,
	productID, email string,
	quantity int,
	createdAt time.Time,
	cancelled bool,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		cancelled:     cancelled,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProductID(productID),
		o.setEmail(email),
		o.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// ProductID returns the identifier of the purchased product.
func (o *Order) ProductID() string {
	return o.productID
}

// Email returns the contact address supplied at creation.
func (o *Order) Email() string {
	return o.email
}

// Quantity returns the number of units ordered.
func (o *Order) Quantity() int {
	return o.quantity
}

// CreatedAt returns the creation timestamp. It is captured exactly once at
// creation and is immutable thereafter.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsCancelled reports whether the order has been explicitly cancelled.
func (o *Order) IsCancelled() bool {
	return o.cancelled
}

// Cancel marks the order as cancelled.
//
// Cancellation is unconditional, terminal and idempotent: cancelling an
// already-cancelled order succeeds and leaves it in the same terminal
// state, and no time-based rule can overwrite it afterwards.
func (o *Order) Cancel() {
	o.cancelled = true
}

// Status derives the order's current status from the wall clock.
// Equivalent to StatusAt(time.Now()).
func (o *Order) Status() Status {
	return o.StatusAt(time.Now())
}

// StatusAt derives the order's status as observed at the given instant.
// The derivation is pure: cancelled orders stay Cancelled, everything else
// progresses Accepted -> OnDelivery -> Delivered with elapsed time since
// creation.
func (o *Order) StatusAt(now time.Time) Status {
	return DeriveStatus(o.cancelled, now.Sub(o.createdAt))
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setProductID validates and sets the purchased product's identifier.
// This is a private method used only during construction.
func (o *Order) setProductID(productID string) error {
	if strings.TrimSpace(productID) == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	o.productID = productID
	return nil
}

// setEmail validates and sets the contact address. Syntactic email
// validation happens at the HTTP boundary; the aggregate only requires the
// value to be present.
func (o *Order) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	o.email = email
	return nil
}

// setQuantity validates and sets the order's quantity.
// Quantity must be positive (greater than 0).
// This is a private method used only during construction.
func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}
