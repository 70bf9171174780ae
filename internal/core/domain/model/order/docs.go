// Package order provides domain entities and business logic for propagation
// order management in the nursery workflow system. It implements the Order
// aggregate root with lifecycle management, stage transitions, and the
// append-only stage history.
//
// The package includes:
//   - Order: The aggregate root that manages identity, quantities, staffing,
//     material planning, and the stage history
//   - Stage: A state machine that keeps the production workflow from moving backward
//   - HistoryEntry: An immutable record of a single workflow event
//   - WorkerAssignments: Role-to-worker staffing for the production stages
//   - Blocker and StageValidationSnapshot: The cached verdict of the latest
//     stage validation
//
// Key business rules:
//   - Orders must have a valid unique identifier, order number, crop data, and
//     positive total quantity
//   - The stage follows the production sequence from creation to dispatch;
//     production transfers never move backward, administrative stage changes
//     may move anywhere
//   - The current stage quantity never exceeds the total and never goes
//     negative; losses are recorded through health assessments
//   - Every mutation appends a dated history entry, never edits past ones
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
