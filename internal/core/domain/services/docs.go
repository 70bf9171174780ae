// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the propagation workflow system. It
// implements complex business workflows that don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - StageValidator: A domain service deciding whether an order meets its
//     current stage requirements and what blocks it from progressing
//   - RuleChecker implementations: independent pure predicates for quantity,
//     staffing, environment, timing, and stage-specific requirements
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
