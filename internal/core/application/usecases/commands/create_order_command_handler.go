package commands

import (
	"context"

	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Allocates the next order number for the creation year and registers the
// order in its initial stage.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID := kernel.NewUUID()
//	cmd, _ := NewCreateOrderCommand(orderID, "citrus", "Valencia", "grafting", 500, orderDate, nil)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// The order-number sequence is read and the order inserted in one transaction,
// so two concurrent creations cannot end up with the same number.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	year := cmd.OrderDate().Year()
	sequence, err := orderRepo.NextOrderSequence(ctx, year)
	if err != nil {
		return err
	}

	number, err := kernel.GenerateOrderNumber(year, sequence)
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		number,
		cmd.CropType(),
		cmd.Variety(),
		cmd.Method(),
		cmd.TotalQuantity(),
		cmd.OrderDate(),
		cmd.RequestedDelivery(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
