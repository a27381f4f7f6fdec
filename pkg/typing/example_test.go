/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing_test

import (
	"fmt"
	"reflect"

	"github.com/voedger/typing/pkg/diag"
	"github.com/voedger/typing/pkg/outcome"
	"github.com/voedger/typing/pkg/typing"
)

func ExampleTypeBuilder() {
	root := typing.NewRootNamespace("example", diag.NopSink())

	b := typing.RootKind.TypeBuilder(root, "int", reflect.TypeFor[int64]()).DefaultSubTyping()
	self := b.Self()
	b.With(
		typing.NewOperation("add", []typing.IType{self, self}, self,
			typing.Func2(func(a, b int64) (int64, error) { return a + b, nil })),
	)
	i, err := b.Build()
	if err != nil {
		panic(err)
	}

	add, _ := typing.OperationNamed(i, "add")
	fmt.Println(add)
	fmt.Println(add.Evaluate(outcome.Of(int64(1)), outcome.Of(int64(2))))

	inc := add.Curry(outcome.Of(int64(1)))
	fmt.Println(inc)
	fmt.Println(inc.Evaluate(outcome.Of(int64(41))))

	// Output:
	// add (int, int) -> int
	// 3
	// add ( 1 ) (int) -> int
	// 42
}

func ExampleType_Sub() {
	root := typing.NewRootNamespace("example", diag.NopSink())

	b := typing.RootKind.TypeBuilder(root, "int", reflect.TypeFor[int64]()).DefaultSubTyping()
	self := b.Self()
	b.With(
		typing.NewOperation("sub", []typing.IType{self, self}, self,
			typing.Func2(func(a, b int64) (int64, error) { return a - b, nil })),
	)
	i, err := b.Build()
	if err != nil {
		panic(err)
	}

	positive := typing.NewTag("positive").
		With(typing.MinExcl(0)).
		SetNone(func(typing.IType) (any, error) { return int64(1), nil })

	pos := i.Sub(positive)
	fmt.Println(pos, pos.None())

	sub, _ := typing.OperationNamed(pos, "sub")
	fmt.Println(sub)
	fmt.Println(sub.Evaluate(outcome.Of(int64(3)), outcome.Of(int64(2))))
	fmt.Println(outcome.Failed(sub.Evaluate(outcome.Of(int64(2)), outcome.Of(int64(3)))))

	// Output:
	// int[positive] 1
	// sub (int[positive], int[positive]) -> int[positive]
	// 1
	// true
}
