// Package guard provides a defensive construction check for value objects,
// commands, and queries. Embedding a ConstructorGuard lets a type detect
// whether it was built through its designated constructor or left as a
// zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures objects are only created through their designated
// constructor functions. The guard maintains an internal flag that is only set
// when the object is created through the proper constructor; a zero-value
// struct fails validation.
//
// Example usage:
//
//	var ErrRecipientNotConstructed = errors.New("Recipient must be created via NewRecipient")
//
//	type Recipient struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRecipient(name string) (Recipient, error) {
//	    if name == "" {
//	        return Recipient{}, errors.New("name is required")
//	    }
//	    return Recipient{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (r Recipient) Validate() error {
//	    return r.guard.Validate(ErrRecipientNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed.
// Returns nil for constructed objects. For zero-value objects it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
