package commands

import (
	"errors"
	"time"

	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/core/domain/model/order"
	"floratrack/internal/pkg/errs"
	"floratrack/internal/pkg/guard"
)

var ErrChangeOrderStageCommandIsNotConstructed = errors.New(
	"ChangeOrderStageCommand must be created via NewChangeOrderStageCommand constructor",
)

// ChangeOrderStageCommand represents an administrative request to set an
// order's stage directly, without the no-backward transfer rules. Used for
// corrections that must go through even while blockers exist.
type ChangeOrderStageCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	toStage  order.Stage
	operator string
	notes    string
	date     time.Time

	guard guard.ConstructorGuard
}

// NewChangeOrderStageCommand creates a command to set an order's stage.
// The stage is parsed from its workflow identifier and may lie anywhere in
// the sequence, including behind the current stage.
func NewChangeOrderStageCommand(
	orderID kernel.UUID,
	toStage string,
	operator string,
	notes string,
	date time.Time,
) (ChangeOrderStageCommand, error) {
	cmd := ChangeOrderStageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setToStage(toStage),
		cmd.setOperator(operator),
		cmd.setDate(date),
	); err != nil {
		return ChangeOrderStageCommand{}, err
	}

	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStageCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStageCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order.
func (c ChangeOrderStageCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ToStage returns the target workflow stage.
func (c ChangeOrderStageCommand) ToStage() order.Stage {
	return c.toStage
}

// Operator returns who performs the change.
func (c ChangeOrderStageCommand) Operator() string {
	return c.operator
}

// Notes returns the free-form remarks for the history entry.
func (c ChangeOrderStageCommand) Notes() string {
	return c.notes
}

// Date returns the change date.
func (c ChangeOrderStageCommand) Date() time.Time {
	return c.date
}

func (c *ChangeOrderStageCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStageCommand) setToStage(toStage string) error {
	parsed, err := order.StageFromString(toStage)
	if err != nil {
		return err
	}

	c.toStage = parsed
	return nil
}

func (c *ChangeOrderStageCommand) setOperator(operator string) error {
	if operator == "" {
		return errs.NewValueIsRequiredError("operator")
	}

	c.operator = operator
	return nil
}

func (c *ChangeOrderStageCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}

	c.date = date
	return nil
}
