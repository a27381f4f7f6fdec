/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing

import (
	"reflect"
)

// Kind is a type of types. Kind values are types, kind constraints are meta-constraints over types.
//
// # Implements:
//   - IKind
type Kind struct {
	Type
}

const rootKindName = "kind"

// Root kind. Kind of root kind is root kind itself.
//
// Root kind requires valid raw and tag names of types.
var RootKind = newRootKind()

func newRootKind() *Kind {
	k := &Kind{}
	table := NewSymbolTable()
	_ = table.Add(typeNameConstraint())
	k.Type.init(k, rootKindName, nil, reflect.TypeFor[IType](), k, table, NewMetadata())
	k.id = NewSymbolID(rootKindName, SymbolKind_Kind, Visibility_Public)
	k.Seal()
	return k
}

// Creates new kind with root kind meta-constraints and specified ones.
func NewKind(name string, constraints ...IConstraint) *Kind {
	if ok, err := ValidIdent(name); !ok {
		panic(err)
	}
	k := &Kind{}
	table := NewSymbolTable()
	for s := range RootKind.Symbols(SymbolKind_Constraint) {
		table.Set(s.ID(), s)
	}
	for _, c := range constraints {
		if err := table.Add(c); err != nil {
			panic(err)
		}
	}
	k.Type.init(RootKind, name, nil, reflect.TypeFor[IType](), k, table, NewMetadata())
	k.id = NewSymbolID(name, SymbolKind_Kind, Visibility_Public)
	k.Seal()
	return k
}

// Starts construction of new type of this kind.
//
// # Panics:
//   - if namespace is nil
//   - if class is nil
func (k *Kind) TypeBuilder(ns INamespace, raw string, class reflect.Type) *TypeBuilder {
	return NewTypeBuilder(k, ns, raw, class)
}

func (k *Kind) Rename(name string) ISymbol {
	r := &Kind{}
	r.Type.init(k.kind, name, nil, k.class, r, k.table.Clone(), k.meta.Renew())
	r.id = k.id.WithName(name)
	r.sealed = k.sealed
	return r
}

func typeNameConstraint() *Constraint {
	return NewConstraint("valid-type-name", func(v any) error {
		t, ok := v.(IType)
		if !ok {
			return ErrIncompatible("«%v» (%T) is not a type", v, v)
		}
		if ok, err := ValidIdent(t.RawName()); !ok {
			return err
		}
		for _, tag := range t.TagNames() {
			if ok, err := ValidIdent(tag); !ok {
				return err
			}
		}
		return nil
	})
}
