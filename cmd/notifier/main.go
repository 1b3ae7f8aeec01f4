package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"ordersystem/cmd"
	"ordersystem/internal/adapters/in/rabbitmq"
	"ordersystem/internal/notifications"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := cmd.LoadConfig()
	if err != nil {
		logger.Error("configuration failed", "error", err)
		os.Exit(1)
	}

	consumer := rabbitmq.NewConsumer(
		rabbitmq.Config{
			URL:             cfg.AMQPURL,
			Queue:           cfg.NotificationsQueue,
			ConnectAttempts: cfg.BrokerConnectAttempts,
			ConnectBackoff:  cfg.BrokerConnectBackoff,
		},
		notifications.NewHandler(cfg.DeliveryDelay, logger),
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("notification service starting", "queue", cfg.NotificationsQueue)

	if err = consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("consumer stopped", "error", err)
		os.Exit(1)
	}

	logger.Info("notification service stopped")
}
