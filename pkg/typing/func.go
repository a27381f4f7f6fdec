/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing

import (
	"reflect"

	"github.com/voedger/typing/pkg/outcome"
)

// Typed operation bodies.
//
// Adapters unwrap first value of every input and call the function.
// If some input has no value, function is not called and absent outcome is returned.
// Function error is returned as failure outcome.

func arg[T any](o outcome.IOutcome) (T, bool) {
	var zero T
	v, ok := o.First()
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

func result[O any](v O, err error) outcome.IOutcome {
	class := reflect.TypeFor[O]()
	if err != nil {
		return outcome.Err(class, err)
	}
	return outcome.OneOf(class, v)
}

func absent[O any]() outcome.IOutcome {
	return outcome.No(reflect.TypeFor[O](), nil)
}

func Func1[A, O any](f func(A) (O, error)) Body {
	return func(in []outcome.IOutcome) outcome.IOutcome {
		a, ok := arg[A](in[0])
		if !ok {
			return absent[O]()
		}
		return result(f(a))
	}
}

func Func2[A, B, O any](f func(A, B) (O, error)) Body {
	return func(in []outcome.IOutcome) outcome.IOutcome {
		a, okA := arg[A](in[0])
		b, okB := arg[B](in[1])
		if !okA || !okB {
			return absent[O]()
		}
		return result(f(a, b))
	}
}

func Func3[A, B, C, O any](f func(A, B, C) (O, error)) Body {
	return func(in []outcome.IOutcome) outcome.IOutcome {
		a, okA := arg[A](in[0])
		b, okB := arg[B](in[1])
		c, okC := arg[C](in[2])
		if !okA || !okB || !okC {
			return absent[O]()
		}
		return result(f(a, b, c))
	}
}

func Func4[A, B, C, D, O any](f func(A, B, C, D) (O, error)) Body {
	return func(in []outcome.IOutcome) outcome.IOutcome {
		a, okA := arg[A](in[0])
		b, okB := arg[B](in[1])
		c, okC := arg[C](in[2])
		d, okD := arg[D](in[3])
		if !okA || !okB || !okC || !okD {
			return absent[O]()
		}
		return result(f(a, b, c, d))
	}
}

func Func5[A, B, C, D, E, O any](f func(A, B, C, D, E) (O, error)) Body {
	return func(in []outcome.IOutcome) outcome.IOutcome {
		a, okA := arg[A](in[0])
		b, okB := arg[B](in[1])
		c, okC := arg[C](in[2])
		d, okD := arg[D](in[3])
		e, okE := arg[E](in[4])
		if !okA || !okB || !okC || !okD || !okE {
			return absent[O]()
		}
		return result(f(a, b, c, d, e))
	}
}

func Func6[A, B, C, D, E, F, O any](f func(A, B, C, D, E, F) (O, error)) Body {
	return func(in []outcome.IOutcome) outcome.IOutcome {
		a, okA := arg[A](in[0])
		b, okB := arg[B](in[1])
		c, okC := arg[C](in[2])
		d, okD := arg[D](in[3])
		e, okE := arg[E](in[4])
		g, okF := arg[F](in[5])
		if !okA || !okB || !okC || !okD || !okE || !okF {
			return absent[O]()
		}
		return result(f(a, b, c, d, e, g))
	}
}

// Body of variadic operation.
func FuncN[A, O any](f func(...A) (O, error)) Body {
	return func(in []outcome.IOutcome) outcome.IOutcome {
		args := make([]A, 0, len(in))
		for _, o := range in {
			a, ok := arg[A](o)
			if !ok {
				return absent[O]()
			}
			args = append(args, a)
		}
		return result(f(args...))
	}
}
