// Package guard provides the constructor guard pattern used by commands and
// other value objects outside the domain kernel. Embedding a ConstructorGuard
// in a struct makes zero-value instances detectable, so objects that bypass
// their constructor fail validation instead of carrying unchecked state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether an object was created through its designated
// constructor function. The zero value reports the object as unconstructed.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the object as properly
// constructed. Call it inside the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was properly constructed. Otherwise it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
