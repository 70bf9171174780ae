package kernel

import (
	"fmt"
	"regexp"

	"floratrack/internal/pkg/errs"
	"floratrack/internal/pkg/guard"
)

// OrderNumberMinSequence is the smallest sequence number assigned within a year.
const OrderNumberMinSequence = 1

// ErrOrderNumberIsNotConstructed is returned when attempting to use an improperly
// initialized OrderNumber. Order numbers must be created via NewOrderNumber or
// GenerateOrderNumber to ensure validity.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"order number must be created via NewOrderNumber or GenerateOrderNumber constructors")

// orderNumberPattern matches the PO-YYYY-NNN format used for propagation orders,
// e.g. "PO-2024-001". The sequence is zero-padded to three digits and widens
// once a year's thousandth order is reached, e.g. "PO-2024-1000".
var orderNumberPattern = regexp.MustCompile(`^PO-\d{4}-\d{3,}$`)

// OrderNumber is the human-readable identifier of a propagation order in the form
// PO-YYYY-NNN, where YYYY is the creation year and NNN a per-year sequence.
// OrderNumber is an immutable value object; the zero value is invalid and fails
// validation - use the constructors to create instances.
//
// Example:
//
//	number, err := kernel.NewOrderNumber("PO-2024-001")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(number) // Output: PO-2024-001
type OrderNumber struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewOrderNumber creates an OrderNumber from its string representation.
// The value must match the PO-YYYY-NNN format exactly.
//
// Returns:
//   - OrderNumber: A valid order number instance
//   - error: Validation error if the format does not match
func NewOrderNumber(value string) (OrderNumber, error) {
	number := OrderNumber{
		guard: guard.NewConstructorGuard(),
	}

	if err := number.setValue(value); err != nil {
		return OrderNumber{}, err
	}

	return number, nil
}

// GenerateOrderNumber builds an OrderNumber from a creation year and a per-year
// sequence number. The sequence must be at least OrderNumberMinSequence; it is
// zero-padded to three digits and widens naturally beyond 999.
//
// Example:
//
//	number, err := kernel.GenerateOrderNumber(2024, 12)
//	// number is "PO-2024-012"
func GenerateOrderNumber(year int, sequence int) (OrderNumber, error) {
	if sequence < OrderNumberMinSequence {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"sequence", fmt.Errorf("%d is less than %d", sequence, OrderNumberMinSequence))
	}

	return NewOrderNumber(fmt.Sprintf("PO-%04d-%03d", year, sequence))
}

// Validate checks if the OrderNumber was properly constructed using a constructor.
// The zero value is invalid and will fail this validation.
func (n OrderNumber) Validate() error {
	return n.guard.Validate(ErrOrderNumberIsNotConstructed)
}

// String returns the PO-YYYY-NNN representation of the order number.
// Implements the fmt.Stringer interface.
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers by value.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

func (n *OrderNumber) setValue(value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError("order number")
	}

	if !orderNumberPattern.MatchString(value) {
		return errs.NewValueIsInvalidErrorWithCause(
			"order number",
			fmt.Errorf("%q does not match the PO-YYYY-NNN format", value),
		)
	}

	n.value = value
	return nil
}
