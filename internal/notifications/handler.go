// Package notifications implements the consumer-side processing of
// notification envelopes: the simulated email send for order confirmations
// and log-only handling for the other kinds.
package notifications

import (
	"context"
	"log/slog"
	"time"

	"ordersystem/internal/core/domain/model/notification"
)

const defaultDeliveryDelay = time.Second

// Handler dispatches decoded envelopes by kind.
//
// Unknown kinds are logged and treated as handled: redelivery cannot turn
// them into a known kind, so the message must be acknowledged rather than
// cycled through the queue forever.
type Handler struct {
	deliveryDelay time.Duration
	logger        *slog.Logger
}

// NewHandler creates a notification handler. A non-positive delivery delay
// falls back to the default of one second.
func NewHandler(deliveryDelay time.Duration, logger *slog.Logger) *Handler {
	if deliveryDelay <= 0 {
		deliveryDelay = defaultDeliveryDelay
	}

	return &Handler{
		deliveryDelay: deliveryDelay,
		logger:        logger.With("component", "notification_handler"),
	}
}

// Handle processes a single envelope. A returned error means the message
// should be retried; nil means it is done, including the unknown-kind case.
func (h *Handler) Handle(ctx context.Context, envelope notification.Envelope) error {
	switch envelope.Kind {
	case notification.KindOrderConfirmation:
		return h.sendConfirmationEmail(ctx, envelope)

	case notification.KindStatusUpdate:
		h.logger.InfoContext(ctx, "order status changed",
			"order_id", envelope.OrderID, "new_status", envelope.NewStatus)
		return nil

	case notification.KindOrderCancellation:
		h.logger.InfoContext(ctx, "order cancelled",
			"order_id", envelope.OrderID)
		return nil

	default:
		h.logger.WarnContext(ctx, "unknown notification type, acknowledging",
			"order_id", envelope.OrderID)
		return nil
	}
}

// sendConfirmationEmail simulates delivering a confirmation email. There is
// no real SMTP backend; the delay stands in for the send latency.
func (h *Handler) sendConfirmationEmail(ctx context.Context, envelope notification.Envelope) error {
	h.logger.InfoContext(ctx, "sending confirmation email",
		"order_id", envelope.OrderID, "to", envelope.Email)

	select {
	case <-time.After(h.deliveryDelay):
	case <-ctx.Done():
		return ctx.Err()
	}

	h.logger.InfoContext(ctx, "confirmation email sent",
		"order_id", envelope.OrderID, "to", envelope.Email)

	return nil
}
