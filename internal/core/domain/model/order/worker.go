package order

import (
	"fmt"

	"floratrack/internal/pkg/errs"
)

// Role identifies a production responsibility that a worker can be assigned to
// on an order. Each critical workflow stage requires its role to be staffed
// before the stage counts as complete.
type Role string

const (
	// RoleBudwoodCollector harvests scion material during budwood collection.
	RoleBudwoodCollector Role = "budwood_collector"

	// RoleGrafter performs the grafting operation.
	RoleGrafter Role = "grafter"

	// RoleNurseryManager oversees post-graft care.
	RoleNurseryManager Role = "nursery_manager"

	// RoleQualityController signs off the quality check.
	RoleQualityController Role = "quality_controller"
)

// getValidRoles returns the set of recognized worker roles.
func getValidRoles() map[Role]struct{} {
	return map[Role]struct{}{
		RoleBudwoodCollector:  {},
		RoleGrafter:           {},
		RoleNurseryManager:    {},
		RoleQualityController: {},
	}
}

// RoleFromString parses a role identifier such as "grafter".
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks that the role is one of the recognized worker roles.
func (r Role) Validate() error {
	if _, ok := getValidRoles()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%q is not a recognized worker role", string(r)))
	}
	return nil
}

// String returns the role identifier.
func (r Role) String() string {
	return string(r)
}

// WorkerAssignments maps production roles to the workers staffed on an order.
// A nil WorkerAssignments means no staffing has happened at all, which is
// weaker than having some roles assigned and others still open; the two cases
// produce different validation blockers.
type WorkerAssignments map[Role]string

// NewWorkerAssignments creates an empty, non-nil assignment set.
func NewWorkerAssignments() WorkerAssignments {
	return WorkerAssignments{}
}

// Assign staffs a worker on a role. The role must be recognized and the worker
// identifier must not be empty.
func (w WorkerAssignments) Assign(role Role, worker string) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if worker == "" {
		return errs.NewValueIsRequiredError("worker")
	}

	w[role] = worker
	return nil
}

// Worker returns the worker assigned to a role. The second return value is
// false when the role is unset or set to an empty identifier.
func (w WorkerAssignments) Worker(role Role) (string, bool) {
	worker, ok := w[role]
	if !ok || worker == "" {
		return "", false
	}
	return worker, true
}

// IsAbsent reports whether no staffing has been recorded at all.
func (w WorkerAssignments) IsAbsent() bool {
	return w == nil
}

// Clone returns an independent copy so aggregate snapshots cannot be mutated
// through a shared map.
func (w WorkerAssignments) Clone() WorkerAssignments {
	if w == nil {
		return nil
	}
	clone := make(WorkerAssignments, len(w))
	for role, worker := range w {
		clone[role] = worker
	}
	return clone
}
