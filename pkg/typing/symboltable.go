/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Ordered mapping from identifiers to symbols.
//
// Iteration order is insertion order. Set for an existing identifier keeps its position.
// SymbolTable is not safe for concurrent mutation.
type SymbolTable struct {
	ids     []SymbolID
	symbols map[SymbolID]ISymbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[SymbolID]ISymbol)}
}

// Adds symbol under its own identifier.
//
// Returns duplicate symbol violation if identifier already exists.
//
// # Panics:
//   - if symbol is nil
func (st *SymbolTable) Add(s ISymbol) error {
	if s == nil {
		panic(ErrMissed("symbol"))
	}
	return st.AddAs(s.ID(), s)
}

// Adds symbol under specified identifier.
//
// Returns duplicate symbol violation if identifier already exists.
func (st *SymbolTable) AddAs(id SymbolID, s ISymbol) error {
	if s == nil {
		panic(ErrMissed("symbol «%v»", id))
	}
	if _, exists := st.symbols[id]; exists {
		return violation(ErrDuplicateSymbol(id), st, s)
	}
	st.ids = append(st.ids, id)
	st.symbols[id] = s
	return nil
}

// Sets symbol for identifier, overwriting existing one.
func (st *SymbolTable) Set(id SymbolID, s ISymbol) {
	if s == nil {
		panic(ErrMissed("symbol «%v»", id))
	}
	if _, exists := st.symbols[id]; !exists {
		st.ids = append(st.ids, id)
	}
	st.symbols[id] = s
}

// Removes symbol by identifier.
//
// Returns not found violation if identifier does not exist.
func (st *SymbolTable) Remove(id SymbolID) error {
	if _, exists := st.symbols[id]; !exists {
		return violation(ErrSymbolNotFound(id), st, id)
	}
	delete(st.symbols, id)
	st.ids = slices.DeleteFunc(st.ids, func(i SymbolID) bool { return i == id })
	return nil
}

// Copies every entry from other table. Later entries overwrite earlier ones.
func (st *SymbolTable) AddAll(other *SymbolTable) {
	for id, s := range other.All() {
		st.Set(id, s)
	}
}

func (st *SymbolTable) Symbol(id SymbolID) (ISymbol, bool) {
	s, ok := st.symbols[id]
	return s, ok
}

func (st *SymbolTable) Contains(id SymbolID) bool {
	_, ok := st.symbols[id]
	return ok
}

func (st *SymbolTable) Len() int { return len(st.ids) }

// Returns all entries in insertion order.
func (st *SymbolTable) All() iter.Seq2[SymbolID, ISymbol] {
	return func(yield func(SymbolID, ISymbol) bool) {
		for _, id := range st.ids {
			if !yield(id, st.symbols[id]) {
				return
			}
		}
	}
}

// Returns identifiers of specified kind in insertion order.
func (st *SymbolTable) IDs(kind SymbolKind) iter.Seq[SymbolID] {
	return func(yield func(SymbolID) bool) {
		for _, id := range st.ids {
			if id.Kind() == kind {
				if !yield(id) {
					return
				}
			}
		}
	}
}

// Returns symbols of specified kind in insertion order.
func (st *SymbolTable) Symbols(kind SymbolKind) iter.Seq[ISymbol] {
	return func(yield func(ISymbol) bool) {
		for id := range st.IDs(kind) {
			if !yield(st.symbols[id]) {
				return
			}
		}
	}
}

// Returns shallow copy of table. Symbols are shared.
func (st *SymbolTable) Clone() *SymbolTable {
	c := &SymbolTable{
		ids:     slices.Clone(st.ids),
		symbols: make(map[SymbolID]ISymbol, len(st.symbols)),
	}
	for id, s := range st.symbols {
		c.symbols[id] = s
	}
	return c
}

// Returns copy of table filtered by identifier.
func (st *SymbolTable) Filter(f func(SymbolID) bool) *SymbolTable {
	c := NewSymbolTable()
	for id, s := range st.All() {
		if f(id) {
			c.Set(id, s)
		}
	}
	return c
}

func (st *SymbolTable) String() string {
	return fmt.Sprintf("symbol table (%d symbols)", st.Len())
}

// Renders table contents, one entry per line.
func (st *SymbolTable) Print() string {
	s := strings.Builder{}
	for id, sym := range st.All() {
		if id == ParentID {
			fmt.Fprintf(&s, "%#v: %v\n", id, sym.ID())
			continue
		}
		fmt.Fprintf(&s, "%#v\n", id)
	}
	return s.String()
}
