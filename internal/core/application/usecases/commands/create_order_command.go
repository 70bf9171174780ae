package commands

import (
	"errors"
	"time"

	"floratrack/internal/core/domain/model/budwood"
	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/pkg/errs"
	"floratrack/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new propagation order.
// Encapsulates the crop data, propagation method, ordered quantity, and
// optional delivery deadline.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "citrus", "Valencia", "grafting", 500, orderDate, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	cropType          string
	variety           string
	method            budwood.PropagationMethod
	totalQuantity     int
	orderDate         time.Time
	requestedDelivery *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new propagation order.
// The method is parsed case-insensitively; requestedDelivery may be nil.
// Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	cropType string,
	variety string,
	method string,
	totalQuantity int,
	orderDate time.Time,
	requestedDelivery *time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCropType(cropType),
		cmd.setVariety(variety),
		cmd.setMethod(method),
		cmd.setTotalQuantity(totalQuantity),
		cmd.setOrderDate(orderDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if requestedDelivery != nil {
		d := *requestedDelivery
		cmd.requestedDelivery = &d
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CropType returns the crop classification.
func (c CreateOrderCommand) CropType() string {
	return c.cropType
}

// Variety returns the plant variety.
func (c CreateOrderCommand) Variety() string {
	return c.variety
}

// Method returns the parsed propagation method.
func (c CreateOrderCommand) Method() budwood.PropagationMethod {
	return c.method
}

// TotalQuantity returns the ordered plant quantity.
func (c CreateOrderCommand) TotalQuantity() int {
	return c.totalQuantity
}

// OrderDate returns the creation date.
func (c CreateOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

// RequestedDelivery returns the optional delivery deadline, or nil.
func (c CreateOrderCommand) RequestedDelivery() *time.Time {
	if c.requestedDelivery == nil {
		return nil
	}
	d := *c.requestedDelivery
	return &d
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCropType(cropType string) error {
	if cropType == "" {
		return errs.NewValueIsRequiredError("crop type")
	}

	c.cropType = cropType
	return nil
}

func (c *CreateOrderCommand) setVariety(variety string) error {
	if variety == "" {
		return errs.NewValueIsRequiredError("variety")
	}

	c.variety = variety
	return nil
}

func (c *CreateOrderCommand) setMethod(method string) error {
	parsed, err := budwood.PropagationMethodFromString(method)
	if err != nil {
		return err
	}

	c.method = parsed
	return nil
}

func (c *CreateOrderCommand) setTotalQuantity(totalQuantity int) error {
	if totalQuantity <= 0 {
		return errs.NewValueIsInvalidError("total quantity")
	}

	c.totalQuantity = totalQuantity
	return nil
}

func (c *CreateOrderCommand) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}

	c.orderDate = orderDate
	return nil
}
