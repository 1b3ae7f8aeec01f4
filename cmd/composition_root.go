// Package cmd holds the configuration and dependency wiring shared by the
// binaries under cmd/.
package cmd

import (
	"context"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	httpin "ordersystem/internal/adapters/in/http"
	"ordersystem/internal/adapters/out/inmem/orderrepo"
	"ordersystem/internal/adapters/out/rabbitmq"
	"ordersystem/internal/adapters/out/soapval"
	"ordersystem/internal/core/application/usecases/commands"
	"ordersystem/internal/core/application/usecases/queries"
	"ordersystem/internal/core/domain/model/notification"
	"ordersystem/internal/core/ports"
	"ordersystem/internal/jobs"
	"ordersystem/internal/pkg/errs"
)

// CompositionRoot wires adapters into use case handlers.
type CompositionRoot struct {
	cfg    Config
	logger *slog.Logger

	orders    *orderrepo.InMemoryOrderRepository
	validator *soapval.Client
	publisher ports.NotificationPublisher

	amqpConn *amqp.Connection
}

// NewCompositionRoot builds the object graph. The broker is optional at
// startup: notifications are best-effort, so an unreachable broker
// degrades publishing instead of failing the whole service.
func NewCompositionRoot(cfg Config, logger *slog.Logger) *CompositionRoot {
	root := &CompositionRoot{
		cfg:       cfg,
		logger:    logger,
		orders:    orderrepo.NewInMemoryOrderRepository(),
		validator: soapval.NewClient(cfg.ValidatorURL, cfg.ValidatorTimeout, logger),
	}

	root.publisher = root.connectPublisher()
	return root
}

func (c *CompositionRoot) connectPublisher() ports.NotificationPublisher {
	conn, err := amqp.Dial(c.cfg.AMQPURL)
	if err != nil {
		c.logger.Warn("broker unreachable, notifications will be dropped", "error", err)
		return disconnectedPublisher{}
	}

	publisher, err := rabbitmq.NewPublisher(conn, c.cfg.NotificationsQueue, c.logger)
	if err != nil {
		c.logger.Warn("publisher setup failed, notifications will be dropped", "error", err)
		_ = conn.Close()
		return disconnectedPublisher{}
	}

	c.amqpConn = conn
	return publisher
}

// Close releases the broker connection if one was established.
func (c *CompositionRoot) Close() {
	if c.amqpConn != nil {
		_ = c.amqpConn.Close()
	}
}

func (c *CompositionRoot) NewPlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orders, c.validator, c.publisher, c.logger)
}

func (c *CompositionRoot) NewCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orders, c.publisher, c.logger)
}

func (c *CompositionRoot) NewGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) NewGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) NewGetAvailableProductsQueryHandler() queries.GetAvailableProductsQueryHandler {
	return queries.NewGetAvailableProductsQueryHandler(c.validator)
}

// NewHTTPServer assembles the inbound HTTP adapter.
func (c *CompositionRoot) NewHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.NewPlaceOrderCommandHandler(),
		c.NewCancelOrderCommandHandler(),
		c.NewGetOrderQueryHandler(),
		c.NewGetAllOrdersQueryHandler(),
		c.NewGetAvailableProductsQueryHandler(),
		c.cfg.PublicBaseURL,
		c.logger,
	)
}

// NewJobManager assembles the background jobs.
func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.NewGetAllOrdersQueryHandler(), c.logger)
}

// disconnectedPublisher stands in when the broker was down at startup. Every
// publish fails as unavailable; the command handlers log and move on.
type disconnectedPublisher struct{}

func (disconnectedPublisher) Publish(context.Context, notification.Envelope) error {
	return errs.NewServiceUnavailableError("rabbitmq")
}
