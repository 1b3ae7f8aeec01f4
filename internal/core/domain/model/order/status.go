package order

import (
	"fmt"
	"time"

	"ordersystem/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Unlike a classic persisted state machine, the non-terminal states are
// never stored: they are a pure function of the time elapsed since the
// order was created. Only cancellation is recorded explicitly, and once an
// order is cancelled no time-based rule may overwrite it.
//
// State progression:
//
//	Accepted ──(>10s)──> OnDelivery ──(>25s)──> Delivered
//	    │                    │                      │
//	    └────────────────────┴──────────────────────┴──> Cancelled (terminal)
//
// Status is a value object that provides wire-format string representations
// and validation for values arriving from external sources.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Accepted is the derived status during the first 10 seconds after
	// creation.
	Accepted

	// OnDelivery is the derived status between 10 and 25 seconds after
	// creation.
	OnDelivery

	// Delivered is the derived status once more than 25 seconds have
	// elapsed since creation.
	Delivered

	// Cancelled is the explicit terminal status. It is the only status a
	// caller can set, and it short-circuits time-based derivation forever.
	Cancelled
)

// Derivation thresholds, measured from the order's creation time.
const (
	onDeliveryAfter = 10 * time.Second
	deliveredAfter  = 25 * time.Second
)

// DeriveStatus computes the status of an order from its cancellation flag
// and the time elapsed since creation. It is a pure function: the same
// inputs always produce the same status, so callers re-derive it on every
// read instead of storing it.
func DeriveStatus(cancelled bool, elapsed time.Duration) Status {
	switch {
	case cancelled:
		return Cancelled
	case elapsed > deliveredAfter:
		return Delivered
	case elapsed > onDeliveryAfter:
		return OnDelivery
	default:
		return Accepted
	}
}

// getStatusStrings returns a map of Status values to their wire-format
// string representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Accepted:   "accepted",
		OnDelivery: "on_delivery",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Accepted:   "accepted",
		OnDelivery: "on_delivery",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Accepted, OnDelivery, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-format representation of the status, e.g.
// "on_delivery". Unknown and out-of-range values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return getStatusStrings()[Unknown]
}

// StatusFromString parses a wire-format status string.
// Returns an error for anything outside the closed set of valid statuses.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}
