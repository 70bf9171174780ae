package guard

import "errors"

// ErrDefaultConstructorGuard is the fallback error returned by Validate
// when no specific validation error is supplied. This ensures validation
// always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. Embedding a ConstructorGuard in a
// struct makes zero-value instances distinguishable from properly constructed
// ones, so invariants established by the constructor cannot be bypassed.
//
// Example usage:
//
//	type OrderNumber struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewOrderNumber(value string) (OrderNumber, error) {
//	    if value == "" {
//	        return OrderNumber{}, errors.New("value is required")
//	    }
//	    return OrderNumber{
//	        value: value,
//	        guard: guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (n OrderNumber) Validate() error {
//	    return n.guard.Validate(ErrOrderNumberNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
// Call this in the constructor of domain objects.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its constructor.
// Returns validationError for zero-value instances, or ErrDefaultConstructorGuard
// when validationError is nil. Returns nil for properly constructed objects.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
