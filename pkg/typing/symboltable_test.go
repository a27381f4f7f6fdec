/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing

import (
	"slices"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"github.com/voedger/typing/pkg/diag"
)

func TestSymbolTable(t *testing.T) {
	require := require.New(t)

	a, b, c := NewNamespace("a", nil), NewNamespace("b", nil), NewNamespace("c", nil)

	t.Run("should be error to add symbol twice", func(t *testing.T) {
		st := NewSymbolTable()
		require.NoError(st.Add(a))

		err := st.Add(a)
		require.ErrorIs(err, ErrAlreadyExistsError)
		v, ok := diag.Find(err)
		require.True(ok)
		require.Same(st, v.Plaintiff())

		err = st.Add(NewNamespace("a", nil))
		require.ErrorIs(err, ErrAlreadyExistsError, "equal identifier is duplicate")

		require.NotPanics(func() { st.Set(a.ID(), b) })
		s, ok := st.Symbol(a.ID())
		require.True(ok)
		require.Same(b, s)
		require.Equal(1, st.Len())
	})

	t.Run("should be ok to keep insertion order", func(t *testing.T) {
		st := NewSymbolTable()
		require.NoError(st.Add(a))
		require.NoError(st.Add(b))
		require.NoError(st.Add(c))
		st.Set(a.ID(), a.Rename("a"))

		ids := slices.Collect(st.IDs(SymbolKind_Namespace))
		require.Equal([]SymbolID{a.ID(), b.ID(), c.ID()}, ids)

		require.NoError(st.Remove(b.ID()))
		require.Equal([]SymbolID{a.ID(), c.ID()}, slices.Collect(st.IDs(SymbolKind_Namespace)))
		require.False(st.Contains(b.ID()))
		require.Empty(slices.Collect(st.IDs(SymbolKind_Type)))
	})

	t.Run("should be error to remove unknown symbol", func(t *testing.T) {
		st := NewSymbolTable()
		require.ErrorIs(st.Remove(a.ID()), ErrNotFoundError)
	})

	t.Run("should be ok to add all, last write wins", func(t *testing.T) {
		st, other := NewSymbolTable(), NewSymbolTable()
		require.NoError(st.Add(a))
		require.NoError(st.Add(b))
		other.Set(b.ID(), c)
		other.Set(c.ID(), c)

		st.AddAll(other)
		require.Equal(3, st.Len())
		s, _ := st.Symbol(b.ID())
		require.Same(c, s)
	})

	t.Run("should be ok to clone and filter", func(t *testing.T) {
		st := NewSymbolTable()
		require.NoError(st.Add(a))
		require.NoError(st.Add(b))

		cl := st.Clone()
		require.NoError(cl.Add(c))
		require.Equal(2, st.Len())
		require.Equal(3, cl.Len())

		f := cl.Filter(func(id SymbolID) bool { return id != b.ID() })
		require.Equal([]SymbolID{a.ID(), c.ID()}, slices.Collect(f.IDs(SymbolKind_Namespace)))
	})

	t.Run("should be ok to print table", func(t *testing.T) {
		ns := NewNamespace("child", a)
		require.NoError(ns.Add(b))
		require.Equal("private Namespace parent: a\npublic Namespace b\n", ns.symbols().Print())
		require.Equal("symbol table (2 symbols)", ns.symbols().String())
	})

	t.Run("should panic if symbol is nil", func(t *testing.T) {
		st := NewSymbolTable()
		require.Panics(func() { _ = st.Add(nil) })
		require.Panics(func() { st.Set(a.ID(), nil) })
	})
}

func TestSymbolTableOrderFuzz(t *testing.T) {
	require := require.New(t)

	f := fuzz.New().NilChance(0).NumElements(1, 32)
	for range 1000 {
		var names []string
		f.Fuzz(&names)

		st := NewSymbolTable()
		var expected []SymbolID
		seen := make(map[string]bool)
		for _, n := range names {
			err := st.Add(NewNamespace(n, nil))
			if seen[n] {
				require.ErrorIs(err, ErrAlreadyExistsError)
				continue
			}
			require.NoError(err)
			seen[n] = true
			expected = append(expected, NewSymbolID(n, SymbolKind_Namespace, Visibility_Public))
		}

		require.Equal(expected, slices.Collect(st.IDs(SymbolKind_Namespace)))
		require.Equal(expected, slices.Collect(st.Clone().IDs(SymbolKind_Namespace)))
		require.Equal(len(expected), st.Len())
	}
}
