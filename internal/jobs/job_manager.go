package jobs

import (
	"fmt"
	"log/slog"

	"floratrack/internal/core/application/usecases/commands"
	"floratrack/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stageValidationJob *StageValidationJob
	overdueOrdersJob   *OverdueOrdersJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the handlers as dependencies to wire up the job execution.
func NewJobManager(
	activeOrdersHandler queries.GetActiveOrdersQueryHandler,
	validateHandler commands.ValidateOrderStageCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stageValidationJob: NewStageValidationJob(activeOrdersHandler, validateHandler, logger),
		overdueOrdersJob:   NewOverdueOrdersJob(activeOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stageValidationJob.Start(); err != nil {
		return fmt.Errorf("failed to start stage validation job: %w", err)
	}

	if err := jm.overdueOrdersJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.stageValidationJob.Stop()
		return fmt.Errorf("failed to start overdue orders job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueOrdersJob.Stop()
	jm.stageValidationJob.Stop()
}
