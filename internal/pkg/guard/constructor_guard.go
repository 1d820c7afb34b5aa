// Package guard provides a defensive construction pattern for value objects,
// commands, and queries: embedding a ConstructorGuard lets a type detect
// whether it was created through its designated constructor or as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil validation error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Types embed it as
// a private field and set it in their constructor; Validate then distinguishes
// constructed instances from zero values.
//
// Example:
//
//	var ErrLoadNotConstructed = errors.New("Load must be created via NewLoad")
//
//	type Load struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewLoad(id kernel.UUID) Load {
//	    return Load{id: id, guard: guard.NewConstructorGuard()}
//	}
//
//	func (l Load) Validate() error {
//	    return l.guard.Validate(ErrLoadNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the enclosing object was created through its
// constructor, otherwise the provided validation error (or
// ErrDefaultConstructorGuard when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
