package ports

import (
	"context"

	"ordersystem/internal/core/domain/model/notification"
)

// NotificationPublisher is the contract with the notification side-channel.
//
// Publishing is best-effort from the orchestration's point of view: command
// handlers fire the publish asynchronously, log failures and never surface
// them to the caller. Durable queuing and delivery are the broker's job;
// implementations only need to hand the envelope over with persistent
// delivery marking.
type NotificationPublisher interface {
	// Publish sends one notification envelope to the queue.
	Publish(ctx context.Context, envelope notification.Envelope) error
}
