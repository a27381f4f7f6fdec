/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/typing/pkg/diag"
	"github.com/voedger/typing/pkg/outcome"
)

func newTestRoot() (*RootNamespace, *diag.Collector) {
	sink := &diag.Collector{}
	return NewRootNamespace("test", sink), sink
}

// Builds int type over int64 with add, add3, neg and variadic sum operations.
func newTestInt(t *testing.T, ns INamespace) IType {
	b := RootKind.TypeBuilder(ns, "int", reflect.TypeFor[int64]()).DefaultSubTyping()
	self := b.Self()
	b.With(
		NewOperation("add", []IType{self, self}, self, Func2(func(a, b int64) (int64, error) { return a + b, nil })),
		NewOperation("add3", []IType{self, self, self}, self, Func3(func(a, b, c int64) (int64, error) { return a + b + c, nil })),
		NewOperation("neg", []IType{self}, self, Func1(func(a int64) (int64, error) { return -a, nil })),
		NewVariadicOperation("sum", self, 4, self, FuncN(func(v ...int64) (int64, error) {
			s := int64(0)
			for _, n := range v {
				s += n
			}
			return s, nil
		})),
	)
	typ, err := b.Build()
	require.NoError(t, err)
	return typ
}

func newTestString(t *testing.T, ns INamespace) IType {
	typ, err := RootKind.TypeBuilder(ns, "string", reflect.TypeFor[string]()).DefaultSubTyping().Build()
	require.NoError(t, err)
	return typ
}

func one(v int64) outcome.IOutcome { return outcome.Of(v) }
