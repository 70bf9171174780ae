package commands

import (
	"context"

	"floratrack/internal/core/domain/model/budwood"
)

// PlanBudwoodCommandHandler computes the budwood requirement for an order and
// attaches the resulting plan to the aggregate. Re-planning replaces any
// previously attached plan.
type PlanBudwoodCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlanBudwoodCommandHandler creates a handler for budwood planning operations.
func NewPlanBudwoodCommandHandler(uowFactory OrderUoWFactory) PlanBudwoodCommandHandler {
	return PlanBudwoodCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the budwood planning command.
// The calculation uses the order's total quantity and propagation method.
func (h *PlanBudwoodCommandHandler) Handle(ctx context.Context, cmd PlanBudwoodCommand) error {
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

	plan, err := budwood.Calculate(
		aggregate.TotalQuantity(),
		aggregate.Method(),
		cmd.WasteFactorPercent(),
		cmd.ExtraForSafety(),
	)
	if err != nil {
		return err
	}

	if err = aggregate.AttachBudwoodPlan(plan); err != nil {
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
