package commands

import (
	"context"
)

// ChangeOrderStageCommandHandler handles administrative stage changes.
// Unlike transfers, these accept any valid stage and leave the current stage
// quantity untouched; the history entry still records who made the change.
type ChangeOrderStageCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStageCommandHandler creates a handler for administrative
// stage change operations.
func NewChangeOrderStageCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStageCommandHandler {
	return ChangeOrderStageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stage change command.
func (h *ChangeOrderStageCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStageCommand) error {
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

	if err = aggregate.ChangeStage(cmd.ToStage(), cmd.Operator(), cmd.Notes(), cmd.Date()); err != nil {
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
