package queries

import (
	"errors"

	"floratrack/internal/pkg/guard"
)

var (
	ErrGetWorkerPerformanceQueryIsNotConstructed = errors.New(
		"GetWorkerPerformanceQuery must be created via NewGetWorkerPerformanceQuery constructor",
	)
)

// GetWorkerPerformanceQuery aggregates per-operator figures across the stage
// history of all orders: how many operations each worker performed, how many
// plants passed through their hands, and their averaged performance scores.
//
// Example:
//
//	query := NewGetWorkerPerformanceQuery()
//	handler := NewGetWorkerPerformanceQueryHandler(db)
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get worker performance: %w", err)
//	}
//
//	for _, worker := range report {
//	    fmt.Printf("%s: %d operations\n", worker.Operator, worker.Operations)
//	}
type GetWorkerPerformanceQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWorkerPerformanceQuery creates a query for the worker performance report.
// This is a parameterless query that aggregates over all orders.
func NewGetWorkerPerformanceQuery() GetWorkerPerformanceQuery {
	return GetWorkerPerformanceQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetWorkerPerformanceQueryIsNotConstructed if validation fails.
func (q GetWorkerPerformanceQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkerPerformanceQueryIsNotConstructed)
}

// GetWorkerPerformanceQueryResponse represents one operator's aggregated record.
// Averages are nil when no history entry for the operator carries the
// corresponding performance figure.
type GetWorkerPerformanceQueryResponse struct {
	Operator            string
	Operations          int
	PlantsHandled       int
	AvgTimeInStageDays  *float64
	AvgQualityScore     *float64
	AvgEfficiencyRating *float64
}
