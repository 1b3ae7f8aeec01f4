package commands

import (
	"context"
	"log/slog"
	"time"

	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/core/domain/model/notification"
	"ordersystem/internal/core/domain/model/order"
	"ordersystem/internal/core/ports"
	"ordersystem/internal/pkg/errs"
)

// publishTimeout bounds the detached notification publish so an unreachable
// broker cannot pile up goroutines forever.
const publishTimeout = 5 * time.Second

// PlaceOrderCommandHandler orchestrates order placement across the product
// validator, the order store and the notification queue.
//
// The sequence is fixed: the validator is consulted first with a single
// bounded attempt, the order is only created after a positive answer, and
// the confirmation notification is fired asynchronously after creation.
// Validation failures abort before any state mutation; publish failures are
// logged and swallowed because the notification is a side-channel, not part
// of the order-creation contract.
type PlaceOrderCommandHandler struct {
	orders    ports.OrderRepository
	validator ports.ProductValidator
	publisher ports.NotificationPublisher
	logger    *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	orders ports.OrderRepository,
	validator ports.ProductValidator,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		orders:    orders,
		validator: validator,
		publisher: publisher,
		logger:    logger.With("component", "place_order_handler"),
	}
}

// Handle processes the order placement command and returns the created
// order.
//
// Error taxonomy: an unavailable product yields a ProductUnavailableError,
// an unreachable or timed-out validator yields a ServiceUnavailableError
// (passed through from the validator port), and an absent product never
// creates an order. Notification publish failures never surface here.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	available, err := h.validator.Validate(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, errs.NewProductUnavailableError(cmd.ProductID())
	}

	placed, err := order.NewOrder(kernel.NewOrderID(), cmd.ProductID(), cmd.Email(), cmd.Quantity())
	if err != nil {
		return nil, err
	}

	if err = h.orders.Add(ctx, placed); err != nil {
		return nil, err
	}

	h.publishAsync(notification.NewOrderConfirmation(placed.ID().String(), placed.Email()))

	return placed, nil
}

// publishAsync fires a notification without awaiting it. The response to
// the caller must never block on, or fail because of, the broker.
func (h *PlaceOrderCommandHandler) publishAsync(envelope notification.Envelope) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := h.publisher.Publish(ctx, envelope); err != nil {
			h.logger.ErrorContext(ctx, "notification publish failed",
				"order_id", envelope.OrderID, "type", envelope.Kind.String(), "error", err)
		}
	}()
}
