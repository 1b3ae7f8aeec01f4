package jobs

import (
	"context"
	"log/slog"

	"ordersystem/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderStatsJob periodically logs a snapshot of the order book broken down
// by derived status. Because statuses move with wall-clock time, the
// snapshot is the only place the full progression is visible without
// polling the API.
type OrderStatsJob struct {
	handler queries.GetAllOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderStatsJob creates a job that reports order statistics every
// thirty seconds.
func NewOrderStatsJob(handler queries.GetAllOrdersQueryHandler, logger *slog.Logger) *OrderStatsJob {
	return &OrderStatsJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_stats_job"),
	}
}

// Start begins the stats job on its thirty-second schedule.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		orders, err := j.handler.Handle(ctx, queries.NewGetAllOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
			return
		}

		byStatus := make(map[string]int)
		for _, o := range orders {
			byStatus[o.Status.String()]++
		}

		j.logger.InfoContext(ctx, "order book snapshot",
			"total", len(orders),
			"accepted", byStatus["accepted"],
			"on_delivery", byStatus["on_delivery"],
			"delivered", byStatus["delivered"],
			"cancelled", byStatus["cancelled"],
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started (running every 30 seconds)")
	return nil
}

// Stop stops the stats job.
func (j *OrderStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}
