package kernel

import (
	"regexp"
	"strings"

	"ordersystem/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not properly
// initialized through one of the constructor functions. This error is
// returned when validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString")

// orderIDPattern matches the canonical identifier format: the fixed ORD-
// prefix followed by eight uppercase alphanumeric characters.
var orderIDPattern = regexp.MustCompile(`^ORD-[0-9A-Z]{8}$`)

// OrderID is a value object that represents the unique identifier of an
// order. Identifiers use the fixed format ORD-XXXXXXXX, where X is an
// uppercase alphanumeric character, and are assigned exactly once at order
// creation.
//
// The zero value of OrderID is invalid and must be constructed using one of
// the provided factory functions: NewOrderID or OrderIDFromString.
//
// OrderID is immutable and thread-safe, making it suitable for concurrent
// use.
//
// Example usage:
//
//	// Allocate a fresh identifier for a new order
//	id := kernel.NewOrderID()
//
//	// Parse an identifier received at a boundary
//	id, err := kernel.OrderIDFromString("ORD-1A2B3C4D")
//	if err != nil {
//	    // handle error
//	}
type OrderID struct {
	value string
}

// NewOrderID allocates a fresh random order identifier. The eight-character
// suffix is drawn from a random UUID, which makes collisions within a
// process lifetime vanishingly unlikely; the store still rejects duplicates
// on insert as a second line of defense.
func NewOrderID() OrderID {
	return OrderID{
		value: "ORD-" + strings.ToUpper(uuid.NewString()[:8]),
	}
}

// OrderIDFromString parses an order identifier from its string
// representation. Returns an error if the string is empty or does not match
// the ORD-XXXXXXXX format.
func OrderIDFromString(s string) (OrderID, error) {
	if s == "" {
		return OrderID{}, errs.NewValueIsRequiredError("orderId")
	}
	if !orderIDPattern.MatchString(s) {
		return OrderID{}, errs.NewValueIsInvalidError("orderId")
	}
	return OrderID{value: s}, nil
}

// Validate ensures the OrderID was properly constructed.
// Returns ErrOrderIDIsNotConstructed for zero-value identifiers.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// String returns the canonical string representation, e.g. "ORD-1A2B3C4D".
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}
