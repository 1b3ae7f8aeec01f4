package commands

import (
	"context"
	"log/slog"

	"ordersystem/internal/core/domain/model/notification"
	"ordersystem/internal/core/domain/model/order"
	"ordersystem/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order and announces the change on
// the notification side-channel.
//
// Cancellation goes straight to the order store (no product validation on
// this path). The store's Cancel is atomic and idempotent, so repeated
// cancellations of the same order all succeed with the same terminal state.
type CancelOrderCommandHandler struct {
	orders    ports.OrderRepository
	publisher ports.NotificationPublisher
	logger    *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	orders ports.OrderRepository,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		orders:    orders,
		publisher: publisher,
		logger:    logger.With("component", "cancel_order_handler"),
	}
}

// Handle processes the cancellation command and returns the cancelled
// order. An absent identifier surfaces as an ObjectNotFoundError from the
// store with nothing mutated. On success a status_update notification is
// fired best-effort; its failure never affects the result.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	cancelled, err := h.orders.Cancel(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	h.publishAsync(notification.NewStatusUpdate(
		cancelled.ID().String(), cancelled.Email(), order.Cancelled.String()))

	return cancelled, nil
}

func (h *CancelOrderCommandHandler) publishAsync(envelope notification.Envelope) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := h.publisher.Publish(ctx, envelope); err != nil {
			h.logger.ErrorContext(ctx, "notification publish failed",
				"order_id", envelope.OrderID, "type", envelope.Kind.String(), "error", err)
		}
	}()
}
