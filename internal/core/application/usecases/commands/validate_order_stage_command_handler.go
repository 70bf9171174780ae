package commands

import (
	"context"

	"floratrack/internal/core/domain/services"
)

// ValidateOrderStageCommandHandler runs the stage validation rules against an
// order and refreshes the denormalized validation cache on the aggregate.
// It returns the full verdict so callers can render blockers and
// recommendations without recomputing them.
type ValidateOrderStageCommandHandler struct {
	uowFactory OrderUoWFactory
	validator  services.StageValidator
}

// NewValidateOrderStageCommandHandler creates a handler for stage validation
// operations.
func NewValidateOrderStageCommandHandler(uowFactory OrderUoWFactory) ValidateOrderStageCommandHandler {
	return ValidateOrderStageCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewStageValidator(),
	}
}

// Handle processes the validation command.
// The verdict is cached on the order even when the order fails its checks;
// only infrastructure errors abort the refresh.
func (h *ValidateOrderStageCommandHandler) Handle(
	ctx context.Context,
	cmd ValidateOrderStageCommand,
) (services.ValidationResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.ValidationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.ValidationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return services.ValidationResult{}, err
	}

	result, err := h.validator.Validate(aggregate, cmd.EvaluationDate())
	if err != nil {
		return services.ValidationResult{}, err
	}

	if err = aggregate.CacheStageValidation(result.Snapshot(cmd.EvaluationDate())); err != nil {
		return services.ValidationResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return services.ValidationResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.ValidationResult{}, err
	}

	return result, nil
}
