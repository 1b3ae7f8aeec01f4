// Package rabbitmq implements the notification publisher port on top of a
// RabbitMQ broker.
package rabbitmq

import (
	"context"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"ordersystem/internal/core/domain/model/notification"
	"ordersystem/internal/pkg/errs"
)

const brokerService = "rabbitmq"

// Publisher sends notification envelopes to a durable named queue via the
// default exchange. Messages are published persistent so a broker restart
// does not drop queued notifications.
type Publisher struct {
	channel *amqp.Channel
	queue   string
	logger  *slog.Logger
}

// NewPublisher opens a channel on the given connection and declares the
// target queue. Declaration is idempotent; publisher and consumer both
// declare so startup order does not matter.
func NewPublisher(conn *amqp.Connection, queue string, logger *slog.Logger) (*Publisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, errs.NewServiceUnavailableErrorWithCause(brokerService, err)
	}

	if _, err = channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, errs.NewServiceUnavailableErrorWithCause(brokerService, err)
	}

	return &Publisher{
		channel: channel,
		queue:   queue,
		logger:  logger.With("component", "notification_publisher"),
	}, nil
}

// Publish encodes the envelope and hands it to the broker.
func (p *Publisher) Publish(ctx context.Context, envelope notification.Envelope) error {
	body, err := envelope.Encode()
	if err != nil {
		return err
	}

	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return errs.NewServiceUnavailableErrorWithCause(brokerService, err)
	}

	p.logger.DebugContext(ctx, "notification published",
		"queue", p.queue, "order_id", envelope.OrderID, "type", envelope.Kind.String())

	return nil
}

// Close releases the underlying channel.
func (p *Publisher) Close() error {
	return p.channel.Close()
}
