/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package sys

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/typing/pkg/diag"
	"github.com/voedger/typing/pkg/outcome"
	"github.com/voedger/typing/pkg/typing"
)

func newTestSys(t *testing.T) (*Sys, *diag.Collector) {
	sink := &diag.Collector{}
	s, err := New("sys", sink)
	require.NoError(t, err)
	return s, sink
}

func TestNew(t *testing.T) {
	require := require.New(t)
	s, sink := newTestSys(t)

	t.Run("should be ok to lookup standard types by value class", func(t *testing.T) {
		require.Equal(s.Int, typing.TypeOfValue[int64](s.Root))
		require.Equal(s.Float, typing.TypeOfValue[float64](s.Root))
		require.Equal(s.String, typing.TypeOfValue[string](s.Root))
		require.Equal(s.Bool, typing.TypeOfValue[bool](s.Root))
	})

	t.Run("should be ok to enum registered types", func(t *testing.T) {
		names := []string{}
		for typ := range s.Root.Types() {
			names = append(names, typ.String())
		}
		require.Equal([]string{"bool", "string", "float", "int"}, names)
	})

	t.Run("should be ok to find tags", func(t *testing.T) {
		for _, tag := range s.Tags() {
			found, err := s.Tag(tag.ID().Name())
			require.NoError(err)
			require.Same(tag, found)
		}
		_, err := s.Tag("unknown")
		require.ErrorIs(err, typing.ErrNotFoundError)
	})

	t.Run("should be no violations reported", func(t *testing.T) {
		require.Empty(sink.Violations)
	})

	t.Run("should be none values valid", func(t *testing.T) {
		for _, typ := range s.Types() {
			require.NoError(typ.CheckValue(outcome.OneOf(typ.Class(), typ.None())), typ)
		}
	})
}

func TestOperations(t *testing.T) {
	require := require.New(t)
	s, _ := newTestSys(t)

	eval := func(name string, args ...string) outcome.IOutcome {
		op, in, err := s.Resolve(name, args...)
		require.NoError(err)
		return op.Evaluate(in...)
	}

	t.Run("should be ok to evaluate arithmetic", func(t *testing.T) {
		tests := []struct {
			op   string
			args []string
			want any
		}{
			{"add", []string{"1", "2"}, int64(3)},
			{"sub", []string{"1", "2"}, int64(-1)},
			{"mul", []string{"3", "4"}, int64(12)},
			{"div", []string{"7", "2"}, int64(3)},
			{"mod", []string{"7", "2"}, int64(1)},
			{"neg", []string{"7"}, int64(-7)},
			{"add", []string{"1.5", "2"}, 3.5},
			{"div", []string{"7", "2.5"}, 2.8},
			{"add3", []string{"1", "2", "3"}, int64(6)},
			{"sum", []string{"1", "2", "3", "4"}, int64(10)},
			{"lt", []string{"1", "2"}, true},
			{"eq", []string{"a", "a"}, true},
			{"len", []string{"привет"}, int64(6)},
			{"concat", []string{"a", "b", "c"}, "abc"},
			{"upper", []string{"abc"}, "ABC"},
			{"not", []string{"true"}, false},
		}
		for _, tt := range tests {
			t.Run(tt.op, func(t *testing.T) {
				v, err := outcome.Single[any](eval(tt.op, tt.args...))
				require.NoError(err)
				require.Equal(tt.want, v)
			})
		}
	})

	t.Run("should be error if division by zero", func(t *testing.T) {
		o := eval("div", "1", "0")
		require.True(outcome.Failed(o))
		require.ErrorIs(o.Err(), ErrDivisionByZero)
	})

	t.Run("should be error if no operation matches arguments", func(t *testing.T) {
		_, _, err := s.Resolve("add", "1")
		require.ErrorIs(err, typing.ErrNotFoundError)

		_, _, err = s.Resolve("unknown")
		require.ErrorIs(err, typing.ErrNotFoundError)
	})
}

func TestCasts(t *testing.T) {
	require := require.New(t)
	s, _ := newTestSys(t)

	tests := []struct {
		name     string
		from, to typing.IType
		value    any
		want     any
	}{
		{"int to float", s.Int, s.Float, int64(5), 5.0},
		{"float to int", s.Float, s.Int, 5.7, int64(5)},
		{"int to string", s.Int, s.String, int64(5), "5"},
		{"string to int", s.String, s.Int, "42", int64(42)},
		{"float to string", s.Float, s.String, 1.5, "1.5"},
		{"string to float", s.String, s.Float, "1.5", 1.5},
		{"bool to string", s.Bool, s.String, true, "true"},
		{"string to bool", s.String, s.Bool, "true", true},
	}
	for _, tt := range tests {
		t.Run("should be ok to cast "+tt.name, func(t *testing.T) {
			cast := tt.from.To(tt.to)
			require.NotNil(cast)
			_, isNoCast := cast.(*typing.NoCast)
			require.False(isNoCast)
			v, err := outcome.Single[any](cast.Evaluate(outcome.OneOf(tt.from.Class(), tt.value)))
			require.NoError(err)
			require.Equal(tt.want, v)
		})
	}

	t.Run("should be error if cast fails", func(t *testing.T) {
		o := s.String.To(s.Int).Evaluate(outcome.Of("abc"))
		require.True(outcome.Failed(o))
	})

	t.Run("should be no cast between bool and int", func(t *testing.T) {
		o := s.Bool.To(s.Int).Evaluate(outcome.Of(true))
		require.True(outcome.Failed(o))
		require.ErrorIs(o.Err(), typing.ErrNoTypeCasterError)
	})
}

func TestSubTypes(t *testing.T) {
	require := require.New(t)
	s, _ := newTestSys(t)

	t.Run("should be ok to derive positive int", func(t *testing.T) {
		pos, err := s.Type("int[positive]")
		require.NoError(err)
		require.Equal("int[positive]", pos.String())
		require.Equal(int64(1), pos.None())

		require.True(pos.IsInstance(outcome.Of(int64(5))))
		require.False(pos.IsInstance(outcome.Of(int64(0))))

		t.Run("should be operations retyped", func(t *testing.T) {
			add, ok := typing.OperationNamed(pos, "add")
			require.True(ok)
			require.Equal("add (int[positive], int[positive]) -> int[positive]", add.String())

			o := add.Evaluate(outcome.Of(int64(1)), outcome.Of(int64(2)))
			require.Equal("3", o.String())

			sub, ok := typing.OperationNamed(pos, "sub")
			require.True(ok)
			o = sub.Evaluate(outcome.Of(int64(1)), outcome.Of(int64(2)))
			require.True(outcome.Failed(o))
			require.ErrorIs(o.Err(), typing.ErrConstraintViolatedError)
		})

		t.Run("should be casts retyped", func(t *testing.T) {
			o := pos.To(s.Float).Evaluate(outcome.Of(int64(2)))
			require.Equal("2", o.String())
		})
	})

	t.Run("should be ok to derive unsigned int without negation", func(t *testing.T) {
		u, err := s.Type("int[unsigned]")
		require.NoError(err)
		_, ok := typing.OperationNamed(u, "neg")
		require.False(ok)
		_, ok = typing.OperationNamed(u, "sub")
		require.False(ok)
		_, ok = typing.OperationNamed(u, "add")
		require.True(ok)
	})

	t.Run("should be ok to apply several tags", func(t *testing.T) {
		typ, err := s.Type("float[positive, nonzero]")
		require.NoError(err)
		require.Equal([]string{"positive", "nonzero"}, typ.TagNames())
		require.Equal(1.0, typ.None())
		require.False(typ.IsInstance(outcome.Of(-1.0)))
	})

	t.Run("should be ok to derive sub-type of sub-type", func(t *testing.T) {
		pos := s.Int.Sub(s.Positive)
		require.Nil(pos.Violation())
		typ := pos.Sub(s.Unsigned)
		require.Nil(typ.Violation())
		require.Equal("int[positive, unsigned]", typ.String())

		p, ok := typ.Parent()
		require.True(ok)
		require.Same(pos, p)

		_, ok = typing.OperationNamed(typ, "neg")
		require.False(ok)
		add, ok := typing.OperationNamed(typ, "add")
		require.True(ok)
		require.Equal("add (int[positive, unsigned], int[positive, unsigned]) -> int[positive, unsigned]", add.String())
	})

	t.Run("should be ok to derive non empty string", func(t *testing.T) {
		typ, err := s.Type("string[nonempty]")
		require.NoError(err)
		require.True(typ.IsInstance(outcome.Of("a")))
		require.False(typ.IsInstance(outcome.Of("")))
	})

	t.Run("should be error if tag does not fit type", func(t *testing.T) {
		_, err := s.Type("string[positive]")
		require.Error(err)

		_, err = s.Type("bool[nonempty]")
		require.Error(err)
	})

	t.Run("should be error if type name is invalid", func(t *testing.T) {
		_, err := s.Type("int[positive")
		require.ErrorIs(err, typing.ErrInvalidError)

		_, err = s.Type("decimal")
		require.ErrorIs(err, typing.ErrNotFoundError)

		_, err = s.Type("int[unknown]")
		require.ErrorIs(err, typing.ErrNotFoundError)
	})
}

func TestParse(t *testing.T) {
	require := require.New(t)
	s, _ := newTestSys(t)

	require.Equal("42", Parse(s.Int, "42").String())
	require.Equal("1.5", Parse(s.Float, "1.5").String())
	require.Equal("true", Parse(s.Bool, "true").String())
	require.Equal("abc", Parse(s.String, "abc").String())

	require.True(outcome.Failed(Parse(s.Int, "abc")))
	require.True(outcome.Failed(Parse(s.Bool, "maybe")))
}
