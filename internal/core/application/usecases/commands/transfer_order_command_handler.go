package commands

import (
	"context"
)

// TransferOrderCommandHandler handles moving an order into its next
// production stage. Loads the aggregate, applies the transfer, and persists
// the result in one transaction.
//
// The aggregate enforces the transfer rules: no backward stage moves, stock
// bounds (order.ErrQuantityExceeded), and history dating. The handler does not
// gate the transfer on stage validation; callers that require a clean verdict
// run the validation use case first.
type TransferOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewTransferOrderCommandHandler creates a handler for stage transfer operations.
func NewTransferOrderCommandHandler(uowFactory OrderUoWFactory) TransferOrderCommandHandler {
	return TransferOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transfer command.
// Returns errs.ErrObjectNotFound when the order does not exist and the
// aggregate's domain errors when the transfer is rejected.
func (h *TransferOrderCommandHandler) Handle(ctx context.Context, cmd TransferOrderCommand) error {
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

	err = aggregate.Transfer(
		cmd.ToStage(),
		cmd.ToSection(),
		cmd.Quantity(),
		cmd.Operator(),
		cmd.Notes(),
		cmd.Performance(),
		cmd.Date(),
	)
	if err != nil {
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
