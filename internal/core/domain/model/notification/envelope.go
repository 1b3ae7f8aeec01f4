// Package notification defines the message contract of the asynchronous
// notification side-channel: the JSON envelope published to the broker and
// the closed set of notification kinds a consumer dispatches on.
//
// The wire format is decoded exactly once at the boundary into an Envelope
// with an enumerated Kind; downstream code never switches on raw strings.
package notification

import (
	"encoding/json"
	"fmt"

	"ordersystem/internal/pkg/errs"
)

// Kind enumerates the closed set of notification kinds.
type Kind int

const (
	// KindUnknown marks a syntactically valid envelope whose type is
	// outside the known set. Consumers acknowledge such messages after
	// logging, since redelivery cannot fix them.
	KindUnknown Kind = iota

	// KindOrderConfirmation confirms a newly placed order.
	KindOrderConfirmation

	// KindStatusUpdate announces an order's new status.
	KindStatusUpdate

	// KindOrderCancellation announces that an order was cancelled.
	KindOrderCancellation
)

// Wire names for each kind.
const (
	typeOrderConfirmation = "order_confirmation"
	typeStatusUpdate      = "status_update"
	typeOrderCancellation = "order_cancellation"
)

// ErrMalformedEnvelope indicates a payload that cannot be parsed at all.
// Such messages are poison: redelivering them can never succeed, so the
// consumer drops them without requeue.
var ErrMalformedEnvelope = fmt.Errorf("malformed notification envelope")

// String returns the wire name of the kind, or "unknown".
func (k Kind) String() string {
	switch k {
	case KindOrderConfirmation:
		return typeOrderConfirmation
	case KindStatusUpdate:
		return typeStatusUpdate
	case KindOrderCancellation:
		return typeOrderCancellation
	default:
		return "unknown"
	}
}

// Envelope is the decoded notification message.
// NewStatus is only meaningful for KindStatusUpdate.
type Envelope struct {
	OrderID   string
	Email     string
	Kind      Kind
	NewStatus string
}

// wireEnvelope is the JSON shape on the queue. Field names are fixed by the
// delivery contract.
type wireEnvelope struct {
	OrderID   string `json:"order_id"`
	Email     string `json:"email"`
	Type      string `json:"type"`
	NewStatus string `json:"new_status,omitempty"`
}

// NewOrderConfirmation creates the envelope published when an order is
// placed.
func NewOrderConfirmation(orderID, email string) Envelope {
	return Envelope{OrderID: orderID, Email: email, Kind: KindOrderConfirmation}
}

// NewStatusUpdate creates the envelope published when an order's status
// changes, carrying the new status in wire format.
func NewStatusUpdate(orderID, email, newStatus string) Envelope {
	return Envelope{OrderID: orderID, Email: email, Kind: KindStatusUpdate, NewStatus: newStatus}
}

// NewOrderCancellation creates the envelope announcing a cancellation.
func NewOrderCancellation(orderID, email string) Envelope {
	return Envelope{OrderID: orderID, Email: email, Kind: KindOrderCancellation}
}

// Validate checks that the envelope carries the fields its kind requires.
func (e Envelope) Validate() error {
	if e.OrderID == "" {
		return errs.NewValueIsRequiredError("order_id")
	}
	if e.Kind == KindUnknown {
		return errs.NewValueIsInvalidError("type")
	}
	if e.Kind == KindStatusUpdate && e.NewStatus == "" {
		return errs.NewValueIsRequiredError("new_status")
	}
	return nil
}

// Encode renders the envelope in the fixed wire format.
func (e Envelope) Encode() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(wireEnvelope{
		OrderID:   e.OrderID,
		Email:     e.Email,
		Type:      e.Kind.String(),
		NewStatus: e.NewStatus,
	})
}

// Decode parses a raw payload from the queue.
//
// Parse failures wrap ErrMalformedEnvelope so consumers can tell poison
// messages from transient handler failures. A payload that parses but
// carries an unrecognized type decodes successfully with KindUnknown; that
// is a contract drift problem to log, not a reason to requeue or crash.
func Decode(raw []byte) (Envelope, error) {
	var w wireEnvelope
	if err := json.Unmarshal(raw, &w); err != nil {
		return Envelope{}, fmt.Errorf("%w: %s", ErrMalformedEnvelope, err)
	}

	e := Envelope{
		OrderID:   w.OrderID,
		Email:     w.Email,
		NewStatus: w.NewStatus,
	}
	switch w.Type {
	case typeOrderConfirmation:
		e.Kind = KindOrderConfirmation
	case typeStatusUpdate:
		e.Kind = KindStatusUpdate
	case typeOrderCancellation:
		e.Kind = KindOrderCancellation
	default:
		e.Kind = KindUnknown
	}
	return e, nil
}
