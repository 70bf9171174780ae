package commands

import (
	"context"
)

// RecordHealthAssessmentCommandHandler handles booking plant losses.
// Loads the order, applies the loss through the aggregate, and persists the
// reduced quantity and the annotated history entry in one transaction.
type RecordHealthAssessmentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordHealthAssessmentCommandHandler creates a handler for health
// assessment operations.
func NewRecordHealthAssessmentCommandHandler(uowFactory OrderUoWFactory) RecordHealthAssessmentCommandHandler {
	return RecordHealthAssessmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the health assessment command.
// Returns order.ErrQuantityExceeded when the loss exceeds the available stock.
func (h *RecordHealthAssessmentCommandHandler) Handle(ctx context.Context, cmd RecordHealthAssessmentCommand) error {
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

	if err = aggregate.RecordHealthAssessment(
		cmd.LostQuantity(), cmd.Operator(), cmd.Notes(), cmd.Date(),
	); err != nil {
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
