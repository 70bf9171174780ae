package jobs

import (
	"context"
	"log/slog"
	"time"

	"floratrack/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueOrdersJob watches active orders against their requested delivery
// dates and raises a log alert for every order past its deadline, so
// operators notice slipped orders without polling the API.
type OverdueOrdersJob struct {
	activeOrdersHandler queries.GetActiveOrdersQueryHandler
	cron                *cron.Cron
	logger              *slog.Logger
}

// NewOverdueOrdersJob creates a job that flags overdue orders.
func NewOverdueOrdersJob(
	activeOrdersHandler queries.GetActiveOrdersQueryHandler,
	logger *slog.Logger,
) *OverdueOrdersJob {
	return &OverdueOrdersJob{
		activeOrdersHandler: activeOrdersHandler,
		cron:                cron.New(cron.WithSeconds()),
		logger:              logger.With("component", "overdue_orders_job"),
	}
}

// Start begins the overdue scan, running every hour.
func (j *OverdueOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue orders job started (running every hour)")
	return nil
}

// Stop stops the overdue scan.
func (j *OverdueOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue orders job stopped")
}

func (j *OverdueOrdersJob) run() {
	ctx := context.Background()
	now := time.Now()

	activeOrders, err := j.activeOrdersHandler.Handle(ctx, queries.NewGetActiveOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue orders job failed to list active orders", "error", err)
		return
	}

	overdue := 0
	for _, activeOrder := range activeOrders {
		if activeOrder.RequestedDelivery == nil || !activeOrder.RequestedDelivery.Before(now) {
			continue
		}

		overdue++
		daysOverdue := int(now.Sub(*activeOrder.RequestedDelivery).Hours() / 24)
		j.logger.WarnContext(ctx, "Order past requested delivery date",
			"order", activeOrder.OrderNumber,
			"stage", activeOrder.Stage,
			"days_overdue", daysOverdue)
	}

	if overdue > 0 {
		j.logger.InfoContext(ctx, "Overdue scan finished", "active", len(activeOrders), "overdue", overdue)
	}
}
