// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery retrieves all propagation orders that have not been
// dispatched yet. Returns the workflow overview used by nursery planning.
//
// Example:
//
//	query := NewGetActiveOrdersQuery()
//	handler := NewGetActiveOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("%s: %s at stage %s\n", o.OrderNumber, o.Variety, o.Stage)
//	}
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to retrieve active orders.
// This is a parameterless query that fetches all non-dispatched orders.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveOrdersQueryIsNotConstructed if validation fails.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse represents one active order in the read model.
// Carries the workflow fields needed for planning lists; the full aggregate
// detail lives behind GetOrderQuery.
type GetActiveOrdersQueryResponse struct {
	ID                   kernel.UUID
	OrderNumber          string
	CropType             string
	Variety              string
	Method               string
	Stage                string
	TotalQuantity        int
	CurrentStageQuantity int
	CompletedQuantity    int
	OrderDate            time.Time
	RequestedDelivery    *time.Time
}
