package commands

import (
	"context"
)

// AssignWorkerCommandHandler handles staffing workers on orders.
type AssignWorkerCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignWorkerCommandHandler creates a handler for worker assignment operations.
func NewAssignWorkerCommandHandler(uowFactory OrderUoWFactory) AssignWorkerCommandHandler {
	return AssignWorkerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the worker assignment command.
// Assigning a role that is already filled replaces the previous worker.
func (h *AssignWorkerCommandHandler) Handle(ctx context.Context, cmd AssignWorkerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignWorker(cmd.Role(), cmd.Worker()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
