package commands

import (
	"errors"

	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/core/domain/model/order"
	"floratrack/internal/pkg/errs"
	"floratrack/internal/pkg/guard"
)

var ErrAssignWorkerCommandIsNotConstructed = errors.New(
	"AssignWorkerCommand must be created via NewAssignWorkerCommand constructor",
)

// AssignWorkerCommand represents a request to staff a worker on one of an
// order's production roles.
type AssignWorkerCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	role    order.Role
	worker  string

	guard guard.ConstructorGuard
}

// NewAssignWorkerCommand creates a command to assign a worker to a role.
// The role is parsed from its identifier, e.g. "grafter".
func NewAssignWorkerCommand(orderID kernel.UUID, role string, worker string) (AssignWorkerCommand, error) {
	cmd := AssignWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRole(role),
		cmd.setWorker(worker),
	); err != nil {
		return AssignWorkerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignWorkerCommand) Validate() error {
	return c.guard.Validate(ErrAssignWorkerCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to staff.
func (c AssignWorkerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Role returns the production role to fill.
func (c AssignWorkerCommand) Role() order.Role {
	return c.role
}

// Worker returns the worker identifier.
func (c AssignWorkerCommand) Worker() string {
	return c.worker
}

func (c *AssignWorkerCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignWorkerCommand) setRole(role string) error {
	parsed, err := order.RoleFromString(role)
	if err != nil {
		return err
	}

	c.role = parsed
	return nil
}

func (c *AssignWorkerCommand) setWorker(worker string) error {
	if worker == "" {
		return errs.NewValueIsRequiredError("worker")
	}

	c.worker = worker
	return nil
}
