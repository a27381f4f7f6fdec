/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing

import (
	"reflect"
	"slices"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/voedger/typing/pkg/diag"
	"github.com/voedger/typing/pkg/outcome"
)

// Size of per type cast operations cache
const castCacheSize = 64

// Type describes values of some Go class: constraints and operations over them.
//
// Types are constructed by TypeBuilder and are immutable after construction.
//
// # Implements:
//   - IType
type Type struct {
	Namespace
	kind  IKind
	raw   string
	tags  []string
	class reflect.Type
	none  any

	noneOnce sync.Once
	noneTerm ITerm

	casts *lru.Cache[IType, IOperation]
}

func (t *Type) init(kind IKind, raw string, tags []string, class reflect.Type, none any, table *SymbolTable, meta *Metadata) {
	t.id = NewTypeID(raw, tags...)
	t.table = table
	t.meta = meta
	t.kind = kind
	t.raw = raw
	t.tags = slices.Clone(tags)
	t.class = class
	t.none = none

	casts, err := lru.New[IType, IOperation](castCacheSize)
	if err != nil {
		panic(err)
	}
	t.casts = casts
}

func (t *Type) Kind() IKind         { return t.kind }
func (t *Type) RawName() string     { return t.raw }
func (t *Type) TagNames() []string  { return slices.Clone(t.tags) }
func (t *Type) Class() reflect.Type { return t.class }
func (t *Type) None() any           { return t.none }
func (t *Type) String() string      { return t.id.Name() }

// Returns nil: valid types have no violation.
func (t *Type) Violation() *diag.Violation { return nil }

func (t *Type) NoneTerm() ITerm {
	t.noneOnce.Do(func() {
		t.noneTerm = NewConstant(t, outcome.OneOf(t.class, t.none))
	})
	return t.noneTerm
}

// Checks outcome against type.
//
// Failure outcome error is returned as is. Otherwise outcome class and every present value class
// should be assignable to type class, and every value should satisfy every type constraint.
// Pending outcome is checked by class only.
//
// # Panics:
//   - if outcome is nil
func (t *Type) CheckValue(o outcome.IOutcome) error {
	return checkValue(t, o)
}

func checkValue(t IType, o outcome.IOutcome) error {
	if o == nil {
		panic(ErrMissed("value to check by type «%v»", t))
	}
	if o.Kind() == outcome.Kind_Error {
		return o.Err()
	}
	class := t.Class()
	if c := o.Class(); !c.AssignableTo(class) {
		return violation(ErrIncompatible("value class «%v» is not assignable to «%v» of type «%v»", c, class, t), t, o)
	}
	if o.Blocking() {
		return nil
	}
	for _, v := range o.Values() {
		if c := reflect.TypeOf(v); !c.AssignableTo(class) {
			return violation(ErrIncompatible("value «%v» class «%v» is not assignable to «%v» of type «%v»", v, c, class, t), t, v)
		}
		for s := range t.symbols().Symbols(SymbolKind_Constraint) {
			c := s.(IConstraint)
			if err := c.Check(v); err != nil {
				return violation(ErrConstraintViolated("«%v» of type «%v» violates «%v»", v, t, c), c, v).WithCause(err)
			}
		}
	}
	return nil
}

func (t *Type) IsInstance(o outcome.IOutcome) bool { return t.CheckValue(o) == nil }

func (t *Type) Instance(o outcome.IOutcome) ITerm {
	if o.Blocking() {
		return NewBlockingConstant(t, o)
	}
	return NewConstant(t, o)
}

func (t *Type) InstanceOf(values ...any) ITerm {
	return t.Instance(valuesOf(t, values...))
}

func valuesOf(t IType, values ...any) outcome.IOutcome {
	class := t.Class()
	for _, v := range values {
		if v == nil {
			return t.ErrorValue(violation(ErrMissed("value of type «%v»", t), t, values))
		}
		if c := reflect.TypeOf(v); !c.AssignableTo(class) {
			return t.ErrorValue(violation(ErrIncompatible("value «%v» class «%v» is not assignable to «%v» of type «%v»", v, c, class, t), t, v))
		}
	}
	switch len(values) {
	case 0:
		return t.NoValue()
	case 1:
		return outcome.OneOf(class, values[0])
	}
	return outcome.Many(class, values...)
}

func (t *Type) ErrorValue(err error) outcome.IOutcome { return outcome.Err(t.class, err) }

func (t *Type) NoValue() outcome.IOutcome { return outcome.No(t.class, nil) }

// Returns cast operation from this type to target type.
//
// Cast is looked up in this type symbol table, then in target one.
// If no cast registered and types have the same value class, returns identity cast.
// Otherwise returns NoCast.
func (t *Type) To(target IType) IOperation {
	if target == nil {
		panic(ErrMissed("cast target type for «%v»", t))
	}
	if op, ok := t.casts.Get(target); ok {
		return op
	}

	op := lookupCast(t, target)
	if target.Violation() == nil {
		t.casts.Add(target, op)
	}
	return op
}

func lookupCast(from, to IType) IOperation {
	if to.Violation() == nil {
		id := CastID(from, to)
		for _, ns := range []INamespace{from, to} {
			if s, ok := ns.symbols().Symbol(id); ok {
				if op, ok := s.(IOperation); ok {
					return op
				}
			}
		}
		if from.Class() == to.Class() {
			return NewIdentity(from, to)
		}
	}
	return NewNoCast(from, to)
}

func (t *Type) Rename(name string) ISymbol {
	r := &Type{}
	r.init(t.kind, name, t.tags, t.class, t.none, t.table.Clone(), t.meta.Renew())
	r.sealed = t.sealed
	return r
}

// NoType is a terminal failure type. It carries the violation which prevented type construction.
//
// Every check of NoType fails with its violation.
//
// # Implements:
//   - IType
type NoType struct {
	Type
	violation *diag.Violation
}

const noTypeName = "no-type"

// Creates NoType in namespace for class. Construction is reported to namespace sink.
func newNoType(ns INamespace, class reflect.Type, v *diag.Violation) *NoType {
	if class == nil {
		class = reflect.TypeFor[any]()
	}
	table := NewSymbolTable()
	if ns != nil {
		table.Set(ParentID, ns)
	}
	nt := &NoType{violation: v}
	nt.Type.init(RootKind, noTypeName, nil, class, nil, table, NewMetadata())
	nt.id = NewSymbolID(noTypeName, SymbolKind_Type, Visibility_Private)
	nt.sealed = true

	nt.Sink().Report(v)
	return nt
}

func (nt *NoType) Violation() *diag.Violation { return nt.violation }

func (nt *NoType) CheckValue(o outcome.IOutcome) error {
	if o == nil {
		panic(ErrMissed("value to check by «%v»", nt))
	}
	return nt.violation
}

func (nt *NoType) IsInstance(outcome.IOutcome) bool { return false }

func (nt *NoType) NoneTerm() ITerm { return nt.Instance(nil) }

func (nt *NoType) Instance(outcome.IOutcome) ITerm {
	return &Constant{
		id:        constantID(nt.violation.Error()),
		valueType: nt,
		value:     nt.ErrorValue(nt.violation),
		meta:      NewMetadata(),
	}
}

func (nt *NoType) InstanceOf(...any) ITerm { return nt.Instance(nil) }

func (nt *NoType) To(target IType) IOperation { return NewNoCast(nt, target) }

func (nt *NoType) Sub(...ITag) IType { return nt }

func (nt *NoType) Rename(string) ISymbol { return nt }

func (nt *NoType) String() string {
	return noTypeName + ": " + nt.violation.Error()
}
