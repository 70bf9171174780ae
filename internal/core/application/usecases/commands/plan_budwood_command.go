package commands

import (
	"errors"

	"floratrack/internal/core/domain/model/budwood"
	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/pkg/errs"
	"floratrack/internal/pkg/guard"
)

var ErrPlanBudwoodCommandIsNotConstructed = errors.New(
	"PlanBudwoodCommand must be created via NewPlanBudwoodCommand constructor",
)

// PlanBudwoodCommand represents a request to compute and attach the budwood
// requirement plan for an order. Quantity and propagation method come from
// the order itself; the caller supplies the waste allowance and safety buffer.
type PlanBudwoodCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	wasteFactorPercent float64
	extraForSafety     int

	guard guard.ConstructorGuard
}

// NewPlanBudwoodCommand creates a command to plan budwood requirements.
func NewPlanBudwoodCommand(
	orderID kernel.UUID,
	wasteFactorPercent float64,
	extraForSafety int,
) (PlanBudwoodCommand, error) {
	cmd := PlanBudwoodCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setWasteFactorPercent(wasteFactorPercent),
		cmd.setExtraForSafety(extraForSafety),
	); err != nil {
		return PlanBudwoodCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlanBudwoodCommand) Validate() error {
	return c.guard.Validate(ErrPlanBudwoodCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to plan for.
func (c PlanBudwoodCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WasteFactorPercent returns the waste allowance to apply.
func (c PlanBudwoodCommand) WasteFactorPercent() float64 {
	return c.wasteFactorPercent
}

// ExtraForSafety returns the safety buffer to add.
func (c PlanBudwoodCommand) ExtraForSafety() int {
	return c.extraForSafety
}

func (c *PlanBudwoodCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlanBudwoodCommand) setWasteFactorPercent(wasteFactorPercent float64) error {
	if wasteFactorPercent < budwood.MinWasteFactorPercent ||
		wasteFactorPercent > budwood.MaxWasteFactorPercent {
		return errs.NewValueIsOutOfRangeError(
			"waste factor percent", wasteFactorPercent,
			budwood.MinWasteFactorPercent, budwood.MaxWasteFactorPercent)
	}

	c.wasteFactorPercent = wasteFactorPercent
	return nil
}

func (c *PlanBudwoodCommand) setExtraForSafety(extraForSafety int) error {
	if extraForSafety < 0 {
		return errs.NewValueIsInvalidError("extra for safety")
	}

	c.extraForSafety = extraForSafety
	return nil
}
