/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package sys

import (
	"reflect"

	"github.com/spf13/cast"

	"github.com/voedger/typing/pkg/outcome"
	"github.com/voedger/typing/pkg/typing"
)

// Parses string into value of type.
//
// Returns failure outcome of type if string can not be converted to type value class.
// Returned value is not checked by type.
func Parse(t typing.IType, raw string) outcome.IOutcome {
	v, err := convert(t.Class(), raw)
	if err != nil {
		return t.ErrorValue(err)
	}
	return outcome.OneOf(t.Class(), v)
}

func convert(class reflect.Type, raw string) (any, error) {
	var (
		v   any
		err error
	)
	switch class.Kind() {
	case reflect.Bool:
		v, err = cast.ToBoolE(raw)
	case reflect.String:
		v = raw
	case reflect.Float32, reflect.Float64:
		v, err = cast.ToFloat64E(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err = cast.ToInt64E(raw)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err = cast.ToUint64E(raw)
	default:
		return nil, typing.ErrUnsupported("parse «%v» as «%v»", raw, class)
	}
	if err != nil {
		return nil, err
	}
	r := reflect.ValueOf(v)
	if !r.CanConvert(class) {
		return nil, typing.ErrIncompatible("«%v» is not convertible to «%v»", raw, class)
	}
	return r.Convert(class).Interface(), nil
}

// Finds operation by name which accepts all raw arguments.
//
// Operations are looked up in standard types in resolution order. Operation matches
// if it accepts arguments count and every argument is parsed by its input type.
// Returns operation and parsed arguments.
func (s *Sys) Resolve(name string, args ...string) (typing.IOperation, []outcome.IOutcome, error) {
	return ResolveIn(s.Types(), name, args...)
}

// Finds operation by name which accepts all raw arguments in specified types.
func ResolveIn(types []typing.IType, name string, args ...string) (typing.IOperation, []outcome.IOutcome, error) {
	for _, t := range types {
		for op := range typing.OperationsNamed(t, name) {
			if in, ok := parseInputs(op, args); ok {
				return op, in, nil
			}
		}
	}
	return nil, nil, typing.ErrNotFound("operation «%v» for %d arguments %v", name, len(args), args)
}

func parseInputs(op typing.IOperation, args []string) ([]outcome.IOutcome, bool) {
	inputs := op.Inputs()
	if op.Variadic() {
		if len(args) > op.Arity() {
			return nil, false
		}
	} else if len(args) != len(inputs) {
		return nil, false
	}

	res := make([]outcome.IOutcome, 0, len(args))
	for i, a := range args {
		t := inputs[0]
		if !op.Variadic() {
			t = inputs[i]
		}
		o := Parse(t, a)
		if outcome.Failed(o) {
			return nil, false
		}
		res = append(res, o)
	}
	return res, true
}
