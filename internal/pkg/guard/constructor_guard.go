// Package guard holds ConstructorGuard, which lets value objects, entities and
// commands detect that they were built as zero values instead of through their
// constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types that must only be created through a
// constructor. The zero value reports "not constructed".
//
//	type Supplier struct {
//	    id    int64
//	    guard guard.ConstructorGuard
//	}
//
//	func (s *Supplier) Validate() error {
//	    return s.guard.Validate(ErrSupplierIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns
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
