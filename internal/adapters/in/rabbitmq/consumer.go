// Package rabbitmq implements the inbound notification consumer: a
// long-running subscriber that pulls envelopes off the queue one at a time
// and acknowledges them by processing outcome.
package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"ordersystem/internal/core/domain/model/notification"
)

const (
	defaultConnectAttempts = 30
	defaultConnectBackoff  = 2 * time.Second
)

// Outcome is the acknowledgement decision for a single delivery.
type Outcome int

const (
	// OutcomeAck removes the message from the queue.
	OutcomeAck Outcome = iota

	// OutcomeRequeue returns the message to the queue for redelivery
	// after a transient handler failure.
	OutcomeRequeue

	// OutcomeDrop rejects the message without requeue. Reserved for
	// poison payloads that can never be processed.
	OutcomeDrop
)

// EnvelopeHandler processes a decoded envelope. A returned error marks the
// failure as transient.
type EnvelopeHandler interface {
	Handle(ctx context.Context, envelope notification.Envelope) error
}

// Config carries the consumer's connection parameters.
type Config struct {
	URL             string
	Queue           string
	ConnectAttempts int
	ConnectBackoff  time.Duration
}

// Consumer subscribes to the notification queue with manual
// acknowledgements and a prefetch window of one, so a crashed consumer
// never loses more than the single in-flight message.
type Consumer struct {
	cfg     Config
	handler EnvelopeHandler
	logger  *slog.Logger
}

// NewConsumer creates a consumer. Non-positive retry settings fall back to
// 30 attempts, 2 seconds apart.
func NewConsumer(cfg Config, handler EnvelopeHandler, logger *slog.Logger) *Consumer {
	if cfg.ConnectAttempts <= 0 {
		cfg.ConnectAttempts = defaultConnectAttempts
	}
	if cfg.ConnectBackoff <= 0 {
		cfg.ConnectBackoff = defaultConnectBackoff
	}

	return &Consumer{
		cfg:     cfg,
		handler: handler,
		logger:  logger.With("component", "notification_consumer"),
	}
}

// Run connects to the broker and consumes until the context is cancelled.
// The broker may come up after the consumer, so the initial connection is
// retried with a fixed backoff before giving up.
func (c *Consumer) Run(ctx context.Context) error {
	conn, err := c.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	channel, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer channel.Close()

	if _, err = channel.QueueDeclare(c.cfg.Queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %q: %w", c.cfg.Queue, err)
	}

	if err = channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("set prefetch: %w", err)
	}

	deliveries, err := channel.Consume(c.cfg.Queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %q: %w", c.cfg.Queue, err)
	}

	c.logger.InfoContext(ctx, "waiting for notifications", "queue", c.cfg.Queue)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case delivery, ok := <-deliveries:
			if !ok {
				return errors.New("delivery channel closed by broker")
			}
			c.settle(ctx, delivery)
		}
	}
}

// HandleDelivery decodes and processes one raw payload and returns the
// acknowledgement decision.
func (c *Consumer) HandleDelivery(ctx context.Context, raw []byte) Outcome {
	envelope, err := notification.Decode(raw)
	if err != nil {
		// undecodable payloads would fail identically on every
		// redelivery
		c.logger.ErrorContext(ctx, "dropping malformed notification", "error", err)
		return OutcomeDrop
	}

	if err = c.handler.Handle(ctx, envelope); err != nil {
		c.logger.ErrorContext(ctx, "notification processing failed, requeueing",
			"order_id", envelope.OrderID, "type", envelope.Kind.String(), "error", err)
		return OutcomeRequeue
	}

	return OutcomeAck
}

func (c *Consumer) settle(ctx context.Context, delivery amqp.Delivery) {
	var err error
	switch c.HandleDelivery(ctx, delivery.Body) {
	case OutcomeAck:
		err = delivery.Ack(false)
	case OutcomeRequeue:
		err = delivery.Nack(false, true)
	case OutcomeDrop:
		err = delivery.Nack(false, false)
	}

	if err != nil {
		c.logger.ErrorContext(ctx, "acknowledgement failed", "error", err)
	}
}

func (c *Consumer) connect(ctx context.Context) (*amqp.Connection, error) {
	var lastErr error

	for attempt := 1; attempt <= c.cfg.ConnectAttempts; attempt++ {
		conn, err := amqp.Dial(c.cfg.URL)
		if err == nil {
			c.logger.InfoContext(ctx, "connected to broker", "attempt", attempt)
			return conn, nil
		}

		lastErr = err
		c.logger.WarnContext(ctx, "broker not ready",
			"attempt", attempt, "max_attempts", c.cfg.ConnectAttempts, "error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.cfg.ConnectBackoff):
		}
	}

	return nil, fmt.Errorf("broker unreachable after %d attempts: %w",
		c.cfg.ConnectAttempts, lastErr)
}
