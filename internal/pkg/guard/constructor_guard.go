// Package guard provides ConstructorGuard, a marker embedded in commands,
// queries and value objects so that zero-value instances can be told apart
// from ones built by their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded value was
// not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is set only by NewConstructorGuard. Embed it as a private
// field and check it from the owner's Validate method:
//
//	type CreateOrderCommand struct {
//	    kind  order.Kind
//	    guard guard.ConstructorGuard
//	}
//
//	func (c CreateOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
