/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package sys

import (
	"errors"
	"math"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/exp/constraints"

	"github.com/voedger/typing/pkg/typing"
)

var ErrDivisionByZero = errors.New("division by zero")

type number interface {
	constraints.Integer | constraints.Float
}

// Returns arithmetic and comparison operations over numeric type.
func arithmetic[T number](self, boolType typing.IType) []typing.ISymbol {
	two := []typing.IType{self, self}
	return []typing.ISymbol{
		typing.NewOperation("add", two, self, typing.Func2(add[T])),
		typing.NewOperation("sub", two, self, typing.Func2(sub[T])),
		typing.NewOperation("mul", two, self, typing.Func2(mul[T])),
		typing.NewOperation("div", two, self, typing.Func2(div[T])),
		typing.NewOperation("neg", []typing.IType{self}, self, typing.Func1(neg[T])),
		typing.NewOperation("lt", two, boolType, typing.Func2(less[T])),
		typing.NewOperation("eq", two, boolType, typing.Func2(equal[T])),
		typing.NewVariadicOperation("sum", self, typing.MaxArity, self, typing.FuncN(sum[T])),
	}
}

func add[T number](a, b T) (T, error) { return a + b, nil }
func sub[T number](a, b T) (T, error) { return a - b, nil }
func mul[T number](a, b T) (T, error) { return a * b, nil }
func neg[T number](a T) (T, error)    { return -a, nil }

func add3[T number](a, b, c T) (T, error) { return a + b + c, nil }

func div[T number](a, b T) (T, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

func mod[T constraints.Integer](a, b T) (T, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a % b, nil
}

func sum[T number](v ...T) (T, error) {
	var s T
	for _, n := range v {
		s += n
	}
	return s, nil
}

func less[T constraints.Ordered](a, b T) (bool, error) { return a < b, nil }

func equal[T comparable](a, b T) (bool, error) { return a == b, nil }

func not(a bool) (bool, error)    { return !a, nil }
func and(a, b bool) (bool, error) { return a && b, nil }
func or(a, b bool) (bool, error)  { return a || b, nil }

func concat(s ...string) (string, error) { return strings.Join(s, ""), nil }
func upper(s string) (string, error)     { return strings.ToUpper(s), nil }
func lower(s string) (string, error)     { return strings.ToLower(s), nil }
func trim(s string) (string, error)      { return strings.TrimSpace(s), nil }

func length(s string) (int64, error) { return int64(len([]rune(s))), nil }

// Casts

func toString(v any) (string, error) { return cast.ToStringE(v) }
func toBool(v any) (bool, error)     { return cast.ToBoolE(v) }

func toFloat(v any) (float64, error) {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, typing.ErrOutOfBounds("«%v» is not finite number", v)
	}
	return f, nil
}

func toInt(v any) (int64, error) {
	if f, ok := v.(float64); ok {
		if math.IsNaN(f) || f > math.MaxInt64 || f < math.MinInt64 {
			return 0, typing.ErrOutOfBounds("«%v» does not fit int", v)
		}
	}
	return cast.ToInt64E(v)
}
