/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing

import (
	"iter"
	"reflect"

	"github.com/voedger/typing/pkg/outcome"
)

// Mutation is a symbol passing through tag mutation operations.
// Mutation with nil symbol is dropped.
type Mutation struct {
	ID     SymbolID
	Symbol ISymbol
}

var (
	// Type of mutations
	MutationType = newSystemType("mutation", reflect.TypeFor[Mutation](), Mutation{})

	// Type of sub-typing work benches
	WorkBenchType = newSystemType("sub-type-work-bench", reflect.TypeFor[*SubTypeWorkBench](), &SubTypeWorkBench{})
)

func newSystemType(raw string, class reflect.Type, none any) *Type {
	t := &Type{}
	t.init(RootKind, raw, nil, class, none, NewSymbolTable(), NewMetadata())
	t.id = t.id.WithVisibility(Visibility_Private)
	t.Seal()
	return t
}

// Tag contributes symbols to sub-types and mutates symbols of sub-types.
//
// # Implements:
//   - ITag
type Tag struct {
	Namespace
	typeConstraint func(IType) error
	none           func(parent IType) (any, error)
}

// Creates new tag.
//
// # Panics:
//   - if name is not valid identifier
func NewTag(name string) *Tag {
	if ok, err := ValidIdent(name); !ok {
		panic(err)
	}
	t := &Tag{}
	t.Namespace.init(NewSymbolID(name, SymbolKind_Tag, Visibility_Public), NewSymbolTable(), nil)
	return t
}

// Adds symbols contributed to sub-types.
//
// # Panics:
//   - if symbol with the same identifier already added
func (t *Tag) With(symbols ...ISymbol) *Tag {
	for _, s := range symbols {
		if err := t.Add(s); err != nil {
			panic(err)
		}
	}
	return t
}

// Adds mutation rule. Rule returns mutated symbol, or false to drop symbol.
//
// # Panics:
//   - if rule is nil
func (t *Tag) AddMutation(name string, rule func(Mutation) (Mutation, bool)) *Tag {
	if rule == nil {
		panic(ErrMissed("tag «%v» mutation «%v» rule", t, name))
	}
	op := NewOperation(name, []IType{MutationType}, MutationType, func(in []outcome.IOutcome) outcome.IOutcome {
		m, ok := arg[Mutation](in[0])
		if !ok {
			return MutationType.NoValue()
		}
		if m, ok = rule(m); !ok || m.Symbol == nil {
			return MutationType.NoValue()
		}
		return outcome.OneOf(MutationType.Class(), m)
	}).WithVisibility(Visibility_Private)
	return t.With(op)
}

// Sets constraint checked against sub-types with tag applied.
func (t *Tag) SetTypeConstraint(c func(IType) error) *Tag {
	t.typeConstraint = c
	return t
}

// Sets generator of none value for sub-types with tag applied.
// Generator receives parent type.
func (t *Tag) SetNone(gen func(parent IType) (any, error)) *Tag {
	t.none = gen
	return t
}

// Returns none value for sub-type of parent type, or false if tag does not change none.
func (t *Tag) NoneOf(parent IType) (any, bool, error) {
	if t.none == nil {
		return nil, false, nil
	}
	v, err := t.none(parent)
	if err != nil {
		return nil, false, violation(ErrInvalid("tag «%v» none for «%v»", t, parent), t, parent).WithCause(err)
	}
	return v, true, nil
}

// Returns public symbols contributed by tag.
func (t *Tag) Contributions() iter.Seq[ISymbol] {
	return func(yield func(ISymbol) bool) {
		for id, s := range t.table.All() {
			if id.IsPrivate() {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}

// Returns mutation operations in definition order.
func (t *Tag) Mutations() iter.Seq[IOperation] {
	return func(yield func(IOperation) bool) {
		for s := range t.Symbols(SymbolKind_Operation) {
			op, ok := s.(IOperation)
			if !ok || !isMutation(op) {
				continue
			}
			if !yield(op) {
				return
			}
		}
	}
}

func isMutation(op IOperation) bool {
	in := op.Inputs()
	return len(in) == 1 && in[0] == IType(MutationType) && op.Output() == IType(MutationType)
}

func (t *Tag) CheckType(typ IType) error {
	if t.typeConstraint == nil {
		return nil
	}
	if err := t.typeConstraint(typ); err != nil {
		return violation(ErrConstraintViolated("type «%v» violates tag «%v»", typ, t), t, typ).WithCause(err)
	}
	return nil
}

func (t *Tag) Rename(name string) ISymbol {
	r := NewTag(name)
	r.table = t.table.Clone()
	r.meta = t.meta.Renew()
	r.typeConstraint = t.typeConstraint
	r.none = t.none
	return r
}

// Passes mutation through mutation operations of tags.
//
// Returns false if some mutation drops symbol. Returns error if some mutation fails.
func mutate(m Mutation, tags []ITag) (Mutation, bool, error) {
	for _, tag := range tags {
		for op := range tag.Mutations() {
			r := op.Evaluate(outcome.OneOf(MutationType.Class(), m))
			if outcome.Failed(r) {
				return m, false, r.Err()
			}
			v, ok := r.First()
			if !ok {
				return m, false, nil
			}
			m = v.(Mutation)
		}
	}
	return m, true, nil
}
