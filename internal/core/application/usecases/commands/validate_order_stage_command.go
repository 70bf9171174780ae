package commands

import (
	"errors"
	"time"

	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/pkg/errs"
	"floratrack/internal/pkg/guard"
)

var ErrValidateOrderStageCommandIsNotConstructed = errors.New(
	"ValidateOrderStageCommand must be created via NewValidateOrderStageCommand constructor",
)

// ValidateOrderStageCommand represents a request to run the stage validation
// rules against an order as of a given date and refresh the validation cache
// stored on it.
type ValidateOrderStageCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	evaluationDate time.Time

	guard guard.ConstructorGuard
}

// NewValidateOrderStageCommand creates a command to validate an order's stage.
// The evaluation date is explicit so verdicts are deterministic and replayable.
func NewValidateOrderStageCommand(orderID kernel.UUID, evaluationDate time.Time) (ValidateOrderStageCommand, error) {
	cmd := ValidateOrderStageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setEvaluationDate(evaluationDate),
	); err != nil {
		return ValidateOrderStageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ValidateOrderStageCommand) Validate() error {
	return c.guard.Validate(ErrValidateOrderStageCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to validate.
func (c ValidateOrderStageCommand) OrderID() kernel.UUID {
	return c.orderID
}

// EvaluationDate returns the date the rules are evaluated against.
func (c ValidateOrderStageCommand) EvaluationDate() time.Time {
	return c.evaluationDate
}

func (c *ValidateOrderStageCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ValidateOrderStageCommand) setEvaluationDate(evaluationDate time.Time) error {
	if evaluationDate.IsZero() {
		return errs.NewValueIsRequiredError("evaluation date")
	}

	c.evaluationDate = evaluationDate
	return nil
}
