package jobs

import (
	"context"
	"log/slog"
	"time"

	"floratrack/internal/core/application/usecases/commands"
	"floratrack/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StageValidationJob periodically re-validates every active order and
// refreshes the cached validation snapshot on the order row, keeping the
// read path's verdict from going stale between manual validation runs.
type StageValidationJob struct {
	activeOrdersHandler queries.GetActiveOrdersQueryHandler
	validateHandler     commands.ValidateOrderStageCommandHandler
	cron                *cron.Cron
	logger              *slog.Logger
}

// NewStageValidationJob creates a job that refreshes validation caches.
func NewStageValidationJob(
	activeOrdersHandler queries.GetActiveOrdersQueryHandler,
	validateHandler commands.ValidateOrderStageCommandHandler,
	logger *slog.Logger,
) *StageValidationJob {
	return &StageValidationJob{
		activeOrdersHandler: activeOrdersHandler,
		validateHandler:     validateHandler,
		cron:                cron.New(cron.WithSeconds()),
		logger:              logger.With("component", "stage_validation_job"),
	}
}

// Start begins the validation refresh, running every ten minutes.
func (j *StageValidationJob) Start() error {
	_, err := j.cron.AddFunc("0 */10 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stage validation job started (running every ten minutes)")
	return nil
}

// Stop stops the validation refresh.
func (j *StageValidationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stage validation job stopped")
}

func (j *StageValidationJob) run() {
	ctx := context.Background()
	now := time.Now()

	activeOrders, err := j.activeOrdersHandler.Handle(ctx, queries.NewGetActiveOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Stage validation job failed to list active orders", "error", err)
		return
	}

	for _, activeOrder := range activeOrders {
		cmd, cmdErr := commands.NewValidateOrderStageCommand(activeOrder.ID, now)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stage validation job failed to build command",
				"order", activeOrder.OrderNumber, "error", cmdErr)
			continue
		}

		result, validateErr := j.validateHandler.Handle(ctx, cmd)
		if validateErr != nil {
			j.logger.ErrorContext(ctx, "Stage validation job failed to validate order",
				"order", activeOrder.OrderNumber, "error", validateErr)
			continue
		}

		if result.Summary.CriticalIssues > 0 {
			j.logger.WarnContext(ctx, "Order blocked by critical issues",
				"order", activeOrder.OrderNumber,
				"stage", activeOrder.Stage,
				"critical_issues", result.Summary.CriticalIssues)
		}
	}
}
