/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing

import (
	"iter"
	"reflect"

	"github.com/voedger/typing/pkg/diag"
	"github.com/voedger/typing/pkg/outcome"
)

// Any named, identifiable entity of type system.
//
// Set of symbol variants is closed: namespaces, types, kinds, tags,
// operations, terms and constraints.
type ISymbol interface {
	ID() SymbolID

	// Returns copy of symbol with new name.
	Rename(name string) ISymbol

	String() string
}

// Symbol which owns symbol table and may have parent namespace.
//
// # Implements:
//   - ISymbol
type INamespace interface {
	ISymbol

	// Returns parent namespace. Root namespace has no parent.
	Parent() (INamespace, bool)

	IsRoot() bool

	Symbol(SymbolID) (ISymbol, bool)

	// Returns symbols of specified kind in definition order.
	Symbols(SymbolKind) iter.Seq[ISymbol]

	SymbolIDs(SymbolKind) iter.Seq[SymbolID]

	// Returns copy of namespace symbol table.
	SymbolTable() *SymbolTable

	Metadata() *Metadata

	// Returns metadatum of specified Go type, looked up through parents chain.
	FindMetadatum(reflect.Type) (any, bool)

	// Returns type registered for specified value class, looked up through parents chain
	// up to the root registry. If not found, returns NoType.
	TypeOf(class reflect.Type) IType

	// Returns violations sink of root namespace.
	Sink() diag.ISink

	symbols() *SymbolTable
}

// Describes shape, constraints and operations surface of values.
//
// # Implements:
//   - INamespace
type IType interface {
	INamespace

	Kind() IKind

	RawName() string

	TagNames() []string

	// Go type of values
	Class() reflect.Type

	// Fallback value for empty results
	None() any

	// Returns constant term with none value. Term is created once.
	NoneTerm() ITerm

	// Checks value class and constraints. Returns violation if check failed.
	CheckValue(outcome.IOutcome) error

	IsInstance(outcome.IOutcome) bool

	// Returns term for outcome: Constant for resolved outcome,
	// BlockingConstant for pending one. Failed check makes term value erroneous.
	Instance(outcome.IOutcome) ITerm

	// Returns term for present values.
	InstanceOf(values ...any) ITerm

	ErrorValue(error) outcome.IOutcome

	NoValue() outcome.IOutcome

	// Returns cast operation from this type to target type.
	// If no cast registered, returns NoCast, which fails on evaluation.
	To(target IType) IOperation

	// Returns sub-type with tags applied. If sub-typing is not possible, returns NoType.
	Sub(tags ...ITag) IType

	// Returns violation for NoType, nil for valid types.
	Violation() *diag.Violation
}

// Type of types.
//
// # Implements:
//   - IType
type IKind interface {
	IType

	// Starts construction of new type of this kind in namespace.
	TypeBuilder(ns INamespace, raw string, class reflect.Type) *TypeBuilder
}

// Symbol which contains types which may be replaced with other types of same value classes.
type IRetypable interface {
	ISymbol

	// Returns types in positions. For operations inputs are followed by output.
	Types() []IType

	// Returns copy of symbol with new name and new types in the same positions.
	// Types should have the same value classes as replaced ones.
	Retype(name string, types []IType) (ISymbol, error)
}

// Typed function over outcome inputs.
//
// # Implements:
//   - IRetypable
type IOperation interface {
	IRetypable

	Inputs() []IType

	Output() IType

	// Returns count of inputs. For variadic operations returns maximum count.
	Arity() int

	Variadic() bool

	// Evaluates operation. Never panics on typing violations: returns failure outcome instead.
	//
	// # Panics:
	//   - if some input is nil
	Evaluate(inputs ...outcome.IOutcome) outcome.IOutcome

	// Returns operation closed over specified first inputs.
	//
	// # Panics:
	//   - if inputs count is out of bounds
	Curry(inputs ...outcome.IOutcome) IOperation
}

// Typed value holder.
//
// # Implements:
//   - IRetypable
type ITerm interface {
	IRetypable

	ValueType() IType

	// Returns term value. Value always satisfies value type check or is failure.
	Value() outcome.IOutcome

	Metadata() *Metadata
}

// Symbol which contributes and mutates symbols of derived types.
//
// # Implements:
//   - INamespace
type ITag interface {
	INamespace

	// Returns symbols contributed to sub-types.
	Contributions() iter.Seq[ISymbol]

	// Returns mutation operations.
	Mutations() iter.Seq[IOperation]

	// Checks sub-type with tag applied.
	CheckType(IType) error

	// Returns none value for sub-types of parent type, or false if tag keeps parent none.
	NoneOf(parent IType) (any, bool, error)
}

// Predicate over values of type.
//
// # Implements:
//   - ISymbol
type IConstraint interface {
	ISymbol

	ConstraintKind() ConstraintKind

	Value() any

	// Returns error if value does not satisfy constraint.
	Check(v any) error
}
