package commands

import (
	"errors"
	"time"

	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/core/domain/model/order"
	"floratrack/internal/pkg/errs"
	"floratrack/internal/pkg/guard"
)

var ErrTransferOrderCommandIsNotConstructed = errors.New(
	"TransferOrderCommand must be created via NewTransferOrderCommand constructor",
)

// TransferOrderCommand represents a request to move an order into its next
// production stage, carrying a quantity of plants with it. Optional worker
// performance figures are recorded on the resulting history entry.
type TransferOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	toStage     order.Stage
	toSection   string
	quantity    int
	operator    string
	notes       string
	performance *order.WorkerPerformance
	date        time.Time

	guard guard.ConstructorGuard
}

// NewTransferOrderCommand creates a command to transfer an order between
// stages. The stage is parsed from its workflow identifier; performance may
// be nil. Quantity bounds against the order's stock are checked by the
// aggregate, not here.
func NewTransferOrderCommand(
	orderID kernel.UUID,
	toStage string,
	toSection string,
	quantity int,
	operator string,
	notes string,
	performance *order.WorkerPerformance,
	date time.Time,
) (TransferOrderCommand, error) {
	cmd := TransferOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setToStage(toStage),
		cmd.setQuantity(quantity),
		cmd.setOperator(operator),
		cmd.setDate(date),
	); err != nil {
		return TransferOrderCommand{}, err
	}

	cmd.toSection = toSection
	cmd.notes = notes
	if performance != nil {
		p := *performance
		cmd.performance = &p
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransferOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransferOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to transfer.
func (c TransferOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ToStage returns the target workflow stage.
func (c TransferOrderCommand) ToStage() order.Stage {
	return c.toStage
}

// ToSection returns the target location label.
func (c TransferOrderCommand) ToSection() string {
	return c.toSection
}

// Quantity returns the plant quantity to carry into the target stage.
func (c TransferOrderCommand) Quantity() int {
	return c.quantity
}

// Operator returns who performs the transfer.
func (c TransferOrderCommand) Operator() string {
	return c.operator
}

// Notes returns the free-form remarks for the history entry.
func (c TransferOrderCommand) Notes() string {
	return c.notes
}

// Performance returns the optional worker performance figures, or nil.
func (c TransferOrderCommand) Performance() *order.WorkerPerformance {
	if c.performance == nil {
		return nil
	}
	p := *c.performance
	return &p
}

// Date returns the transfer date.
func (c TransferOrderCommand) Date() time.Time {
	return c.date
}

func (c *TransferOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransferOrderCommand) setToStage(toStage string) error {
	parsed, err := order.StageFromString(toStage)
	if err != nil {
		return err
	}

	c.toStage = parsed
	return nil
}

func (c *TransferOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}

func (c *TransferOrderCommand) setOperator(operator string) error {
	if operator == "" {
		return errs.NewValueIsRequiredError("operator")
	}

	c.operator = operator
	return nil
}

func (c *TransferOrderCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}

	c.date = date
	return nil
}
