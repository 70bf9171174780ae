package commands

import (
	"errors"
	"time"

	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/pkg/errs"
	"floratrack/internal/pkg/guard"
)

var ErrRecordHealthAssessmentCommandIsNotConstructed = errors.New(
	"RecordHealthAssessmentCommand must be created via NewRecordHealthAssessmentCommand constructor",
)

// RecordHealthAssessmentCommand represents a request to book a plant loss in
// an order's current stage.
type RecordHealthAssessmentCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	lostQuantity int
	operator     string
	notes        string
	date         time.Time

	guard guard.ConstructorGuard
}

// NewRecordHealthAssessmentCommand creates a command to record a plant loss.
// A zero loss is valid and records an inspection with no casualties. The
// upper bound against available stock is checked by the aggregate.
func NewRecordHealthAssessmentCommand(
	orderID kernel.UUID,
	lostQuantity int,
	operator string,
	notes string,
	date time.Time,
) (RecordHealthAssessmentCommand, error) {
	cmd := RecordHealthAssessmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLostQuantity(lostQuantity),
		cmd.setOperator(operator),
		cmd.setDate(date),
	); err != nil {
		return RecordHealthAssessmentCommand{}, err
	}

	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordHealthAssessmentCommand) Validate() error {
	return c.guard.Validate(ErrRecordHealthAssessmentCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the assessed order.
func (c RecordHealthAssessmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LostQuantity returns the number of plants lost.
func (c RecordHealthAssessmentCommand) LostQuantity() int {
	return c.lostQuantity
}

// Operator returns who performed the assessment.
func (c RecordHealthAssessmentCommand) Operator() string {
	return c.operator
}

// Notes returns the free-form remarks for the history entry.
func (c RecordHealthAssessmentCommand) Notes() string {
	return c.notes
}

// Date returns the assessment date.
func (c RecordHealthAssessmentCommand) Date() time.Time {
	return c.date
}

func (c *RecordHealthAssessmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordHealthAssessmentCommand) setLostQuantity(lostQuantity int) error {
	if lostQuantity < 0 {
		return errs.NewValueIsInvalidError("lost quantity")
	}

	c.lostQuantity = lostQuantity
	return nil
}

func (c *RecordHealthAssessmentCommand) setOperator(operator string) error {
	if operator == "" {
		return errs.NewValueIsRequiredError("operator")
	}

	c.operator = operator
	return nil
}

func (c *RecordHealthAssessmentCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}

	c.date = date
	return nil
}
