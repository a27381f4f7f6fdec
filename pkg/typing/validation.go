/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing

import (
	"errors"
	"reflect"

	"github.com/voedger/typing/pkg/diag"
)

// Validates type builder state.
//
// Builder is valid if:
//   - raw name and tag names are valid identifiers,
//   - none value is generated without error and is assignable to value class,
//   - target namespace has no other type with the same identifier or value class.
//
// Returns violation which joins all found errors, nil if builder is valid.
func TypeMustBeValid(b *TypeBuilder) *diag.Violation {
	var errs error

	if ok, err := ValidIdent(b.raw); !ok {
		errs = errors.Join(errs, ErrInvalid("type name «%v»: %v", b.raw, err))
	}
	for _, tag := range b.tags {
		if ok, err := ValidIdent(tag); !ok {
			errs = errors.Join(errs, ErrInvalid("type «%v» tag name «%v»: %v", b.raw, tag, err))
		}
	}

	none, err := b.noneGen()
	switch {
	case err != nil:
		errs = errors.Join(errs, ErrInvalid("type «%v» none generator failed: %v", b.ID(), err))
	case none == nil:
		errs = errors.Join(errs, ErrMissed("type «%v» none value", b.ID()))
	default:
		if c := reflect.TypeOf(none); !c.AssignableTo(b.class) {
			errs = errors.Join(errs, ErrIncompatible("type «%v» none value «%v» class «%v» is not assignable to «%v»", b.ID(), none, c, b.class))
		}
	}

	switch ns := b.namespace.(type) {
	case IType:
		// nested types are not registered
	case *RootNamespace:
		if ns.Registered(b.class) {
			errs = errors.Join(errs, ErrAlreadyExists("type for class «%v» in «%v»", b.class, ns))
		}
		if ns.table.Contains(b.ID()) {
			errs = errors.Join(errs, ErrDuplicateSymbol(b.ID()))
		}
	default:
		if t, ok := typeOfClassIn(ns, b.class); ok {
			errs = errors.Join(errs, ErrAlreadyExists("type «%v» for class «%v» in «%v»", t, b.class, ns))
		}
		if ns.symbols().Contains(b.ID()) {
			errs = errors.Join(errs, ErrDuplicateSymbol(b.ID()))
		}
	}

	if errs == nil {
		return nil
	}
	return violation(ErrInvalid("type «%v»", b.ID()), b, b.ID()).WithCause(errs)
}

// Validates that replacement types have the same value classes as replaced ones, position by position.
func TypesMustHaveSameValueClasses(old, new []IType) error {
	if len(old) != len(new) {
		return ErrOutOfBounds("expected %d types, got %d", len(old), len(new))
	}
	var errs error
	for i := range old {
		if new[i] == nil {
			errs = errors.Join(errs, ErrMissed("type #%d", i))
			continue
		}
		if o, n := old[i].Class(), new[i].Class(); o != n {
			errs = errors.Join(errs, ErrIncompatible("type #%d «%v» value class «%v» differs from «%v» of «%v»", i, new[i], n, o, old[i]))
		}
	}
	return errs
}

func typeOfClassIn(ns INamespace, class reflect.Type) (IType, bool) {
	for t := range TypesOf(ns) {
		if t.Class() == class {
			return t, true
		}
	}
	return nil, false
}
