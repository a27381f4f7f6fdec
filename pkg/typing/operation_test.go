/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/typing/pkg/outcome"
)

func TestOperationEvaluate(t *testing.T) {
	require := require.New(t)

	root, _ := newTestRoot()
	i := newTestInt(t, root)

	add3, ok := OperationNamed(i, "add3")
	require.True(ok)

	t.Run("should be ok to evaluate", func(t *testing.T) {
		o := add3.Evaluate(one(1), one(2), one(3))
		require.Equal(outcome.Of(int64(6)), o)
		require.Equal(3, add3.Arity())
		require.False(add3.Variadic())
	})

	t.Run("should be curried operation if fewer inputs", func(t *testing.T) {
		o := add3.Evaluate(one(1), one(2))
		require.Equal(OperationClass, o.Class())
		c, err := outcome.Single[IOperation](o)
		require.NoError(err)
		require.Equal("add3 ( 1, 2 ) (int) -> int", c.String())
		require.Equal(outcome.Of(int64(6)), c.Evaluate(one(3)))

		o = add3.Evaluate(one(1))
		c, err = outcome.Single[IOperation](o)
		require.NoError(err)
		require.Equal(2, c.Arity())

		o = c.Evaluate(one(2))
		require.Equal(OperationClass, o.Class())
		c, err = outcome.Single[IOperation](o)
		require.NoError(err)
		require.Equal(outcome.Of(int64(6)), c.Evaluate(one(3)))
	})

	t.Run("should be bound input failure kept lazy in partial evaluation", func(t *testing.T) {
		o := add3.Evaluate(outcome.Of("bad"))
		require.False(outcome.Failed(o))
		c, err := outcome.Single[IOperation](o)
		require.NoError(err)
		idx, _ := InputIndex(c.Evaluate(one(2), one(3)).Err())
		require.Equal(0, idx)
	})

	t.Run("should be failure if too many or no inputs", func(t *testing.T) {
		o := add3.Evaluate(one(1), one(2), one(3), one(4))
		require.ErrorIs(o.Err(), ErrOutOfBoundsError)
		require.Equal(i.Class(), o.Class())

		require.ErrorIs(add3.Evaluate().Err(), ErrOutOfBoundsError)
		require.ErrorIs(add3.Curry(one(1)).Evaluate().Err(), ErrOutOfBoundsError)
	})

	t.Run("should be absent result if input is absent", func(t *testing.T) {
		o := add3.Evaluate(one(1), i.NoValue(), one(3))
		require.Equal(outcome.Kind_No, o.Kind())
	})

	t.Run("should panic if input is nil", func(t *testing.T) {
		require.Panics(func() { add3.Evaluate(one(1), nil, one(3)) })
	})
}

func TestOperationInputCheck(t *testing.T) {
	require := require.New(t)

	root, _ := newTestRoot()
	b := RootKind.TypeBuilder(root, "small", reflect.TypeFor[int64]()).With(MaxIncl(10))
	small, err := b.Build()
	require.NoError(err)

	calls := 0
	op := NewOperation("op", []IType{small, small, small}, small, func(in []outcome.IOutcome) outcome.IOutcome {
		calls++
		return in[0]
	})

	for k := range 3 {
		t.Run(fmt.Sprintf("should be input #%d reported and body not called", k), func(t *testing.T) {
			in := []outcome.IOutcome{one(1), one(2), one(3)}
			in[k] = one(100)
			o := op.Evaluate(in...)
			require.True(outcome.Failed(o))

			idx, ok := InputIndex(o.Err())
			require.True(ok)
			require.Equal(k, idx)
			require.ErrorIs(o.Err(), ErrConstraintViolatedError)
			require.Zero(calls)
		})
	}

	t.Run("should be first failed input reported", func(t *testing.T) {
		o := op.Evaluate(one(1), one(100), one(100))
		idx, _ := InputIndex(o.Err())
		require.Equal(1, idx)
		require.Zero(calls)
	})

	t.Run("should be input failure passed with its index", func(t *testing.T) {
		cause := errors.New("upstream")
		o := op.Evaluate(one(1), one(2), small.ErrorValue(cause))
		idx, _ := InputIndex(o.Err())
		require.Equal(2, idx)
		require.ErrorIs(o.Err(), cause)
		require.Zero(calls)
	})

	t.Run("should be wrong value class reported", func(t *testing.T) {
		o := op.Evaluate(outcome.Of("1"), one(2), one(3))
		idx, _ := InputIndex(o.Err())
		require.Equal(0, idx)
		require.ErrorIs(o.Err(), ErrIncompatibleError)
	})

	t.Run("should be output checked", func(t *testing.T) {
		inc := NewOperation("inc", []IType{small}, small, Func1(func(a int64) (int64, error) { return a + 1, nil }))
		require.Equal("10", inc.Evaluate(one(9)).String())

		o := inc.Evaluate(one(10))
		require.True(outcome.Failed(o))
		require.ErrorIs(o.Err(), ErrConstraintViolatedError)
		_, ok := InputIndex(o.Err())
		require.False(ok)
	})
}

func TestOperationBodyFault(t *testing.T) {
	require := require.New(t)

	root, _ := newTestRoot()
	i := newTestInt(t, root)

	t.Run("should be panic reported as body fault", func(t *testing.T) {
		op := NewOperation("boom", []IType{i}, i, func([]outcome.IOutcome) outcome.IOutcome { panic("boom") })
		o := op.Evaluate(one(1))
		require.True(outcome.Failed(o))
		idx, ok := InputIndex(o.Err())
		require.True(ok)
		require.Equal(BodyFaultIndex, idx)
		require.ErrorIs(o.Err(), ErrBodyFaultError)
		require.Contains(o.Err().Error(), "boom")
	})

	t.Run("should be nil result reported as body fault", func(t *testing.T) {
		op := NewOperation("nil", []IType{i}, i, func([]outcome.IOutcome) outcome.IOutcome { return nil })
		idx, _ := InputIndex(op.Evaluate(one(1)).Err())
		require.Equal(BodyFaultIndex, idx)
	})

	t.Run("should be body error passed as is", func(t *testing.T) {
		err := errors.New("failed")
		op := NewOperation("fail", []IType{i}, i, Func1(func(int64) (int64, error) { return 0, err }))
		o := op.Evaluate(one(1))
		require.Equal(err, o.Err())
	})
}

func TestOperationConstruction(t *testing.T) {
	require := require.New(t)

	root, _ := newTestRoot()
	i := newTestInt(t, root)
	body := func(in []outcome.IOutcome) outcome.IOutcome { return in[0] }

	t.Run("should panic if arity out of bounds", func(t *testing.T) {
		require.Panics(func() { NewOperation("op", nil, i, body) })
		require.Panics(func() { NewOperation("op", []IType{i, i, i, i, i, i, i}, i, body) })
		require.Panics(func() { NewVariadicOperation("op", i, 0, i, body) })
		require.Panics(func() { NewVariadicOperation("op", i, MaxArity+1, i, body) })
	})

	t.Run("should panic if types or body missed", func(t *testing.T) {
		require.Panics(func() { NewOperation("op", []IType{nil}, i, body) })
		require.Panics(func() { NewOperation("op", []IType{i}, nil, body) })
		require.Panics(func() { NewOperation("op", []IType{i}, i, nil) })
	})

	t.Run("should be ok to build all arities", func(t *testing.T) {
		in := []IType{i, i, i, i, i, i}
		bodies := []Body{
			Func1(func(a int64) (int64, error) { return a, nil }),
			Func2(func(a, b int64) (int64, error) { return a + b, nil }),
			Func3(func(a, b, c int64) (int64, error) { return a + b + c, nil }),
			Func4(func(a, b, c, d int64) (int64, error) { return a + b + c + d, nil }),
			Func5(func(a, b, c, d, e int64) (int64, error) { return a + b + c + d + e, nil }),
			Func6(func(a, b, c, d, e, f int64) (int64, error) { return a + b + c + d + e + f, nil }),
		}
		for n := 1; n <= MaxArity; n++ {
			op := NewOperation(fmt.Sprintf("sum%d", n), in[:n], i, bodies[n-1])
			args := make([]outcome.IOutcome, n)
			for k := range args {
				args[k] = one(1)
			}
			require.Equal(fmt.Sprint(n), op.Evaluate(args...).String())
		}
	})

	t.Run("should be ok to rename and retype", func(t *testing.T) {
		add, _ := OperationNamed(i, "add")
		r := add.Rename("plus")
		require.Equal("plus (int, int) -> int", r.String())

		ns := NewNamespace("ns", root)
		j, err := RootKind.TypeBuilder(ns, "j", reflect.TypeFor[int64]()).Build()
		require.NoError(err)

		rt, err := add.Retype("add", []IType{j, j, j})
		require.NoError(err)
		require.Equal("add (j, j) -> j", rt.String())
		require.Equal("3", rt.(IOperation).Evaluate(one(1), one(2)).String())

		s := newTestString(t, root)
		_, err = add.Retype("add", []IType{s, s, s})
		require.ErrorIs(err, ErrIncompatibleError)

		_, err = add.Retype("add", []IType{j, j})
		require.ErrorIs(err, ErrOutOfBoundsError)
	})
}

func TestVariadicOperation(t *testing.T) {
	require := require.New(t)

	root, _ := newTestRoot()
	i := newTestInt(t, root)
	sum, ok := OperationNamed(i, "sum")
	require.True(ok)
	require.True(sum.Variadic())
	require.Equal(4, sum.Arity())

	t.Run("should be ok to evaluate from zero to max inputs", func(t *testing.T) {
		require.Equal("0", sum.Evaluate().String())
		require.Equal("1", sum.Evaluate(one(1)).String())
		require.Equal("10", sum.Evaluate(one(1), one(2), one(3), one(4)).String())
	})

	t.Run("should be failure if too many inputs", func(t *testing.T) {
		o := sum.Evaluate(one(1), one(2), one(3), one(4), one(5))
		require.ErrorIs(o.Err(), ErrOutOfBoundsError)
	})

	t.Run("should be every input checked", func(t *testing.T) {
		o := sum.Evaluate(one(1), one(2), outcome.Of("3"))
		idx, _ := InputIndex(o.Err())
		require.Equal(2, idx)
	})

	t.Run("should be ok to curry up to max inputs", func(t *testing.T) {
		c := sum.Curry(one(1), one(2))
		require.Equal("3", c.Evaluate().String())
		require.Equal("6", c.Evaluate(one(3)).String())
		require.Equal(2, c.Arity())

		full := sum.Curry(one(1), one(2), one(3), one(4))
		require.Equal("10", full.Evaluate().String())
		require.ErrorIs(full.Evaluate(one(5)).Err(), ErrOutOfBoundsError)

		require.Panics(func() { sum.Curry(one(1), one(2), one(3), one(4), one(5)) })
	})
}

func TestCurry(t *testing.T) {
	require := require.New(t)

	root, _ := newTestRoot()
	i := newTestInt(t, root)
	add3, _ := OperationNamed(i, "add3")

	t.Run("should be curried evaluation equal to full evaluation", func(t *testing.T) {
		in := []outcome.IOutcome{one(1), one(2), one(3)}
		want := add3.Evaluate(in...)
		require.Equal("6", want.String())

		for k := 1; k < len(in); k++ {
			c := add3.Curry(in[:k]...)
			require.Equal(len(in)-k, c.Arity())
			require.Equal(want, c.Evaluate(in[k:]...), "split at %d", k)
		}

		require.Equal(want, add3.Curry(one(1)).Curry(one(2)).Evaluate(one(3)))
	})

	t.Run("should be ok to render curried operation", func(t *testing.T) {
		c := add3.Curry(one(1), one(2))
		require.Equal("add3 ( 1, 2 ) (int) -> int", c.String())
		require.Equal([]IType{i}, c.Inputs())
		require.Same(i, c.Output())

		cc := add3.Curry(one(1)).Curry(one(2))
		require.Equal(c.ID(), cc.ID())
	})

	t.Run("should be bound input failure reported on evaluation", func(t *testing.T) {
		c := add3.Curry(outcome.Of("bad"))
		o := c.Evaluate(one(2), one(3))
		require.True(outcome.Failed(o))
		idx, _ := InputIndex(o.Err())
		require.Equal(0, idx, "index of input in base operation")

		c = add3.Curry(one(1), one(2))
		idx, _ = InputIndex(c.Evaluate(outcome.Of("bad")).Err())
		require.Equal(2, idx)
	})

	t.Run("should panic if curry out of bounds", func(t *testing.T) {
		require.Panics(func() { add3.Curry() })
		require.Panics(func() { add3.Curry(one(1), one(2), one(3)) })
		require.Panics(func() { add3.Curry(one(1), one(2)).Curry(one(3)) })
		require.Panics(func() { add3.Curry(nil) })
	})

	t.Run("should be ok to retype curried operation", func(t *testing.T) {
		ns := NewNamespace("ns", root)
		j, err := RootKind.TypeBuilder(ns, "j", reflect.TypeFor[int64]()).Build()
		require.NoError(err)

		c := add3.Curry(one(1))
		require.Equal([]IType{i, i, i, i}, c.Types(), "bound input types included")

		rt, err := c.Retype(c.ID().Name(), []IType{j, j, j, j})
		require.NoError(err)
		op := rt.(*Curried)
		require.Equal([]IType{j, j}, op.Inputs())
		require.Equal([]IType{j, j, j}, op.Base().Inputs())
		require.Equal("6", op.Evaluate(one(2), one(3)).String())

		_, err = c.Retype(c.ID().Name(), []IType{j, j, j})
		require.ErrorIs(err, ErrIncompatibleError)
	})

	t.Run("should be bound inputs retyped by substitution", func(t *testing.T) {
		ns := NewNamespace("ns", root)
		small, err := RootKind.TypeBuilder(ns, "small", reflect.TypeFor[int64]()).With(MaxIncl(5)).Build()
		require.NoError(err)

		c := add3.Curry(one(7))
		table := NewSymbolTable()
		require.NoError(table.Add(c))

		res, count, err := Substitute(table, map[SymbolID]IType{i.ID(): small})
		require.NoError(err)
		require.Equal(4, count)

		var rt *Curried
		for s := range res.Symbols(SymbolKind_Operation) {
			rt = s.(*Curried)
		}
		require.Equal([]IType{small, small, small}, rt.Base().Inputs())
		idx, _ := InputIndex(rt.Evaluate(one(1), one(1)).Err())
		require.Equal(0, idx, "bound input is checked by substituted type")
	})
}

func TestCast(t *testing.T) {
	require := require.New(t)

	root, _ := newTestRoot()
	i := newTestInt(t, root)
	s := newTestString(t, root)

	t.Run("should be no cast if not registered", func(t *testing.T) {
		c := i.To(s)
		_, ok := c.(*NoCast)
		require.True(ok)

		o := c.Evaluate(one(1))
		require.True(outcome.Failed(o))
		require.ErrorIs(o.Err(), ErrNoTypeCasterError)
		require.Contains(o.Err().Error(), "no type caster registered")

		require.NotPanics(func() { c.Evaluate(outcome.Of("wrong class")) })
	})

	t.Run("should be identity cast for the same value class", func(t *testing.T) {
		ns := NewNamespace("ns", root)
		j, err := RootKind.TypeBuilder(ns, "j", reflect.TypeFor[int64]()).With(MaxIncl(10)).Build()
		require.NoError(err)

		c := i.To(j)
		require.Equal(CastID(i, j), c.ID())
		require.Equal("5", c.Evaluate(one(5)).String())
		require.ErrorIs(c.Evaluate(one(50)).Err(), ErrConstraintViolatedError)
	})

	t.Run("should be ok to find registered cast in both types", func(t *testing.T) {
		ns := NewNamespace("ns", root)
		b := RootKind.TypeBuilder(ns, "text", reflect.TypeFor[string]())
		self := b.Self()
		b.With(
			NewCast(i, self, Func1(func(v int64) (string, error) { return fmt.Sprint(v), nil })),
			NewCast(self, s, Func1(func(v string) (string, error) { return v, nil })),
		)
		text, err := b.Build()
		require.NoError(err)

		require.Equal("42", i.To(text).Evaluate(one(42)).String())
		require.Same(i.To(text), i.To(text))
		require.Equal("x", text.To(s).Evaluate(outcome.Of("x")).String())
	})
}
