// Package guard provides a defensive pattern that ensures value objects and
// commands are only created through their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was initialized through its
// constructor or created as a zero value. Embedding a ConstructorGuard in a
// command or value object and checking it in Validate() prevents direct
// struct initialization from bypassing validation rules.
//
// Example usage:
//
//	type ChangeOrderStatusCommand struct {
//	    orderID kernel.UUID
//	    status  order.Status
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewChangeOrderStatusCommand(...) (ChangeOrderStatusCommand, error) {
//	    cmd := ChangeOrderStatusCommand{guard: guard.NewConstructorGuard()}
//	    // validation ...
//	    return cmd, nil
//	}
//
//	func (c ChangeOrderStatusCommand) Validate() error {
//	    return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. This should be called in the constructor of domain
// objects so they can be distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its
// constructor. For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
