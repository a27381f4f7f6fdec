/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing

import (
	"iter"
	"reflect"

	"github.com/voedger/typing/pkg/diag"
)

// Namespace is a symbol which owns symbol table.
//
// Parent namespace is stored inside the symbol table under ParentID.
// Namespace without parent entry is root.
//
// # Implements:
//   - INamespace
type Namespace struct {
	id     SymbolID
	table  *SymbolTable
	meta   *Metadata
	sealed bool
}

// Creates new namespace. If parent is nil, namespace is root.
//
// Namespace is not added to parent, use parent Add() to publish it.
func NewNamespace(name string, parent INamespace) *Namespace {
	ns := &Namespace{}
	ns.init(NewSymbolID(name, SymbolKind_Namespace, Visibility_Public), NewSymbolTable(), parent)
	return ns
}

func (ns *Namespace) init(id SymbolID, table *SymbolTable, parent INamespace) {
	ns.id = id
	ns.table = table
	ns.meta = NewMetadata()
	if parent != nil {
		ns.table.Set(ParentID, parent)
	}
}

func (ns *Namespace) ID() SymbolID   { return ns.id }
func (ns *Namespace) String() string { return ns.id.Name() }

func (ns *Namespace) Rename(name string) ISymbol {
	c := &Namespace{
		id:    ns.id.WithName(name),
		table: ns.table.Clone(),
		meta:  ns.meta.Renew(),
	}
	return c
}

func (ns *Namespace) Parent() (INamespace, bool) {
	s, ok := ns.table.Symbol(ParentID)
	if !ok {
		return nil, false
	}
	p, ok := s.(INamespace)
	return p, ok
}

func (ns *Namespace) IsRoot() bool { return !ns.table.Contains(ParentID) }

func (ns *Namespace) Symbol(id SymbolID) (ISymbol, bool) { return ns.table.Symbol(id) }

// Returns symbols of kind. Parent link is not enumerated.
func (ns *Namespace) Symbols(kind SymbolKind) iter.Seq[ISymbol] {
	return func(yield func(ISymbol) bool) {
		for id := range ns.SymbolIDs(kind) {
			s, _ := ns.table.Symbol(id)
			if !yield(s) {
				return
			}
		}
	}
}

// Returns identifiers of kind. Parent link is not enumerated.
func (ns *Namespace) SymbolIDs(kind SymbolKind) iter.Seq[SymbolID] {
	return func(yield func(SymbolID) bool) {
		for id := range ns.table.IDs(kind) {
			if id == ParentID {
				continue
			}
			if !yield(id) {
				return
			}
		}
	}
}

func (ns *Namespace) SymbolTable() *SymbolTable { return ns.table.Clone() }

func (ns *Namespace) symbols() *SymbolTable { return ns.table }

func (ns *Namespace) Metadata() *Metadata { return ns.meta }

// Returns metadatum from this namespace or the nearest parent.
func (ns *Namespace) FindMetadatum(t reflect.Type) (any, bool) {
	visited := make(map[INamespace]bool)
	var n INamespace = ns
	for n != nil && !visited[n] {
		visited[n] = true
		if v, ok := n.Metadata().Get(t); ok {
			return v, true
		}
		p, ok := n.Parent()
		if !ok {
			break
		}
		n = p
	}
	return nil, false
}

func (ns *Namespace) TypeOf(class reflect.Type) IType {
	return typeOfClass(ns, class)
}

func (ns *Namespace) Sink() diag.ISink { return sinkOf(ns) }

// Adds symbol to namespace.
//
// Returns duplicate symbol violation if symbol with the same identifier exists.
// Returns unsupported error if namespace is sealed.
func (ns *Namespace) Add(s ISymbol) error {
	if ns.sealed {
		return violation(ErrUnsupported("add «%v» to sealed namespace «%v»", s, ns), ns, s)
	}
	return ns.table.Add(s)
}

// Sets symbol to namespace, overwriting existing one.
//
// Returns unsupported error if namespace is sealed.
func (ns *Namespace) Set(id SymbolID, s ISymbol) error {
	if ns.sealed {
		return violation(ErrUnsupported("set «%v» to sealed namespace «%v»", id, ns), ns, s)
	}
	ns.table.Set(id, s)
	return nil
}

// Seals namespace. Sealed namespace rejects further additions.
func (ns *Namespace) Seal() { ns.sealed = true }

func (ns *Namespace) Sealed() bool { return ns.sealed }

// Returns type of specified class from the nearest namespace in parent chain.
func typeOfClass(start INamespace, class reflect.Type) IType {
	visited := make(map[INamespace]bool)
	var n INamespace = start
	for n != nil && !visited[n] {
		visited[n] = true
		if r, ok := n.(*RootNamespace); ok {
			return r.TypeOf(class)
		}
		if t, ok := typeOfClassIn(n, class); ok {
			return t
		}
		p, ok := n.Parent()
		if !ok {
			break
		}
		n = p
	}
	return newNoType(start, class, violation(ErrNotRegistered("type for class «%v»", class), start, class))
}

// Returns sink of the root namespace in parent chain. If chain has no root registry, returns log sink.
func sinkOf(start INamespace) diag.ISink {
	visited := make(map[INamespace]bool)
	var n INamespace = start
	for n != nil && !visited[n] {
		visited[n] = true
		if r, ok := n.(*RootNamespace); ok {
			return r.Sink()
		}
		p, ok := n.Parent()
		if !ok {
			break
		}
		n = p
	}
	return diag.LogSink()
}
