/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing

import (
	"iter"
	"reflect"
	"regexp"
	"unicode/utf8"
)

// Maximum length of identifier
const MaxIdentLen = 255

// Longest valid identifier prefix: letter or underscore followed by letters, digits, underscores and hyphens.
var identPrefix = regexp.MustCompile(`^(?:[A-Za-z_][A-Za-z0-9_-]*)?`)

// Returns is string valid identifier and error if not.
//
// Identifier starts with letter or underscore and contains letters,
// digits, underscores and hyphens.
func ValidIdent(ident string) (bool, error) {
	if ident == "" {
		return false, ErrMissed("ident")
	}
	if l := len(ident); l > MaxIdentLen {
		return false, ErrOutOfBounds("ident «%s» too long (%d bytes, max is %d)", ident, l, MaxIdentLen)
	}
	if p := len(identPrefix.FindString(ident)); p < len(ident) {
		c, _ := utf8.DecodeRuneInString(ident[p:])
		return false, ErrInvalid("ident «%s» has invalid char «%c» at pos %d", ident, c, p)
	}
	return true, nil
}

// Returns is symbols have equal identifiers.
func SameSymbol(a, b ISymbol) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID() == b.ID()
}

// Returns symbol from namespace as T.
func SymbolOf[T ISymbol](ns INamespace, id SymbolID) (T, bool) {
	var zero T
	s, ok := ns.Symbol(id)
	if !ok {
		return zero, false
	}
	t, ok := s.(T)
	return t, ok
}

// Returns all operations from namespace with specified name, regardless of signature.
func OperationsNamed(ns INamespace, name string) iter.Seq[IOperation] {
	return func(yield func(IOperation) bool) {
		for s := range ns.Symbols(SymbolKind_Operation) {
			if op, ok := s.(IOperation); ok && op.ID().Name() == name {
				if !yield(op) {
					return
				}
			}
		}
	}
}

// Returns first operation from namespace with specified name.
func OperationNamed(ns INamespace, name string) (IOperation, bool) {
	for op := range OperationsNamed(ns, name) {
		return op, true
	}
	return nil, false
}

// Returns all types registered in namespace.
func TypesOf(ns INamespace) iter.Seq[IType] {
	return func(yield func(IType) bool) {
		for s := range ns.Symbols(SymbolKind_Type) {
			if t, ok := s.(IType); ok {
				if !yield(t) {
					return
				}
			}
		}
	}
}

// Returns type for value class T from namespace.
func TypeOfValue[T any](ns INamespace) IType {
	return ns.TypeOf(reflect.TypeFor[T]())
}
