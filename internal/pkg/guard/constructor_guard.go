// Package guard provides a constructor guard for value objects and entities.
// Embedding a ConstructorGuard lets a type detect whether it was created
// through its designated constructor or left as a zero value, which keeps
// domain invariants intact even when structs cross package boundaries.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
// The zero value reports the object as not constructed.
//
// Example:
//
//	type PublishOrderCommand struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewPublishOrderCommand(orderID kernel.UUID) (PublishOrderCommand, error) {
//	    ...
//	    return PublishOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c PublishOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrPublishOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the owner was properly constructed, otherwise the
// provided validation error (or ErrDefaultConstructorGuard when nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
