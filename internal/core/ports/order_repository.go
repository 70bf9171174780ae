// Package ports defines repository interfaces for the propagation domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for propagation order
// aggregates. Provides methods for storing, retrieving, and querying orders
// by their workflow state.
//
// Update enforces optimistic concurrency through the aggregate's version:
// two concurrent mutations computed from the same stale snapshot must not
// silently overwrite each other's quantity bookkeeping, so an update with a
// stale version fails instead of writing.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Fails when the stored version no longer matches the aggregate's version.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order including its stage history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order aggregate by its order number.
	GetByNumber(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)

	// GetAllActive retrieves all orders that have not reached the terminal
	// stage, ordered by order date.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// NextOrderSequence returns the next free order-number sequence for the
	// given year. Sequences start at 1 and grow by one per created order.
	NextOrderSequence(ctx context.Context, year int) (int, error)
}
