/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing

import (
	"reflect"
	"slices"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/typing/pkg/outcome"
)

// Maximum count of operation inputs
const MaxArity = 6

// Index of input reported when operation body faulted
const BodyFaultIndex = 999

// Value class of outcomes which hold operations, like partial evaluation results
var OperationClass = reflect.TypeFor[IOperation]()

// Body of operation. Inputs are already checked by operation input types.
type Body func(inputs []outcome.IOutcome) outcome.IOutcome

// Operation is a typed function over outcome inputs.
//
// Operation has fixed count of inputs from 1 to MaxArity, or is variadic with
// elements of single type and bounded maximum count of inputs.
//
// # Implements:
//   - IOperation
type Operation struct {
	id       SymbolID
	inputs   []IType
	output   IType
	body     Body
	variadic bool
	maxArity int
}

// Creates new public operation with fixed inputs.
//
// # Panics:
//   - if inputs count is out of [1, MaxArity] bounds
//   - if some input type or output type is nil
//   - if body is nil
func NewOperation(name string, inputs []IType, output IType, body Body) *Operation {
	if l := len(inputs); l < 1 || l > MaxArity {
		panic(ErrOutOfBounds("operation «%v» inputs count %d, should be from 1 to %d", name, l, MaxArity))
	}
	mustTypes(name, inputs, output)
	if body == nil {
		panic(ErrMissed("operation «%v» body", name))
	}
	return &Operation{
		id:       NewOperationID(name, Visibility_Public, inputs, output, false),
		inputs:   slices.Clone(inputs),
		output:   output,
		body:     body,
		maxArity: len(inputs),
	}
}

// Creates new public variadic operation. Operation accepts from 0 to maxArity inputs of elem type.
//
// # Panics:
//   - if maxArity is out of [1, MaxArity] bounds
//   - if elem or output type is nil
//   - if body is nil
func NewVariadicOperation(name string, elem IType, maxArity int, output IType, body Body) *Operation {
	if maxArity < 1 || maxArity > MaxArity {
		panic(ErrOutOfBounds("variadic operation «%v» maximum arity %d, should be from 1 to %d", name, maxArity, MaxArity))
	}
	inputs := []IType{elem}
	mustTypes(name, inputs, output)
	if body == nil {
		panic(ErrMissed("operation «%v» body", name))
	}
	return &Operation{
		id:       NewOperationID(name, Visibility_Public, inputs, output, true),
		inputs:   inputs,
		output:   output,
		body:     body,
		variadic: true,
		maxArity: maxArity,
	}
}

func mustTypes(name string, inputs []IType, output IType) {
	for i, in := range inputs {
		if in == nil {
			panic(ErrMissed("operation «%v» input #%d type", name, i))
		}
	}
	if output == nil {
		panic(ErrMissed("operation «%v» output type", name))
	}
}

func (op *Operation) ID() SymbolID    { return op.id }
func (op *Operation) String() string  { return op.id.String() }
func (op *Operation) Inputs() []IType { return slices.Clone(op.inputs) }
func (op *Operation) Output() IType   { return op.output }
func (op *Operation) Arity() int      { return op.maxArity }
func (op *Operation) Variadic() bool  { return op.variadic }
func (op *Operation) Types() []IType  { return append(op.Inputs(), op.output) }
func (op *Operation) Body() Body      { return op.body }

// Returns copy of operation with specified visibility.
func (op *Operation) WithVisibility(vis Visibility) *Operation {
	c := *op
	c.id = op.id.WithVisibility(vis)
	return &c
}

func (op *Operation) Rename(name string) ISymbol {
	c := *op
	c.id = op.id.WithName(name)
	return &c
}

// Returns copy of operation with new name and types.
// Types are inputs followed by output and should have the same value classes as existing ones.
func (op *Operation) Retype(name string, types []IType) (ISymbol, error) {
	if err := TypesMustHaveSameValueClasses(op.Types(), types); err != nil {
		return nil, violation(ErrIncompatible("retype operation «%v» to «%v»", op, name), op, types).WithCause(err)
	}
	c := *op
	c.inputs = slices.Clone(types[:len(types)-1])
	c.output = types[len(types)-1]
	c.id = NewOperationID(name, op.id.Visibility(), c.inputs, c.output, op.variadic)
	return &c, nil
}

// Returns input type for input index.
func (op *Operation) inputType(i int) IType {
	if op.variadic {
		return op.inputs[0]
	}
	return op.inputs[i]
}

// Returns is evaluation of operation with n inputs is partial.
func partial(op IOperation, n int) bool {
	return !op.Variadic() && n > 0 && n < op.Arity()
}

func (op *Operation) checkArity(n int) error {
	if op.variadic {
		if n > op.maxArity {
			return violation(ErrOutOfBounds("operation «%v» accepts at most %d inputs, got %d", op, op.maxArity, n), op, n)
		}
		return nil
	}
	if n != op.maxArity {
		return violation(ErrOutOfBounds("operation «%v» expects %d inputs, got %d", op, op.maxArity, n), op, n)
	}
	return nil
}

// Evaluates operation.
//
// Inputs are checked by input types in order, first failed check is reported with input index
// and body is not called. Body faults are reported with BodyFaultIndex. Body output is checked
// by output type. All failures are returned as failure outcomes of output type.
//
// Evaluation of fixed operation with fewer inputs returns outcome of OperationClass which holds
// operation curried with these inputs.
//
// # Panics:
//   - if some input is nil
func (op *Operation) Evaluate(inputs ...outcome.IOutcome) outcome.IOutcome {
	return evaluate(op, op.body, inputs)
}

func evaluate(op *Operation, body Body, inputs []outcome.IOutcome) outcome.IOutcome {
	for i, in := range inputs {
		if in == nil {
			panic(ErrMissed("operation «%v» input #%d", op, i))
		}
	}

	if partial(op, len(inputs)) {
		return outcome.OneOf(OperationClass, op.Curry(inputs...))
	}

	if err := op.checkArity(len(inputs)); err != nil {
		return op.output.ErrorValue(err)
	}

	for i, in := range inputs {
		if err := op.inputType(i).CheckValue(in); err != nil {
			return op.output.ErrorValue(&InputError{Operation: op.id, Index: i, Err: err})
		}
	}

	out := call(op, body, inputs)
	if outcome.Failed(out) {
		return out
	}

	if err := op.output.CheckValue(out); err != nil {
		return op.output.ErrorValue(violation(ErrInvalid("operation «%v» output", op), op, out).WithCause(err))
	}
	return out
}

func call(op *Operation, body Body, inputs []outcome.IOutcome) (out outcome.IOutcome) {
	defer func() {
		if r := recover(); r != nil {
			if logger.IsVerbose() {
				logger.Verbose("operation", op, "body fault:", r)
			}
			out = op.output.ErrorValue(&InputError{
				Operation: op.id,
				Index:     BodyFaultIndex,
				Err:       violation(ErrBodyFault(op, r), op, inputs),
			})
		}
	}()
	out = body(slices.Clone(inputs))
	if out == nil {
		out = op.output.ErrorValue(&InputError{
			Operation: op.id,
			Index:     BodyFaultIndex,
			Err:       violation(ErrBodyFault(op, "nil result"), op, inputs),
		})
	}
	return out
}

// Returns operation closed over specified first inputs.
//
// Inputs are not checked here: failed inputs are reported on evaluation of returned operation.
//
// # Panics:
//   - if some input is nil
//   - if inputs count is out of [1, Arity) bounds for fixed operation
//     or [1, Arity] bounds for variadic one
func (op *Operation) Curry(inputs ...outcome.IOutcome) IOperation {
	return newCurried(op, op, inputs)
}

// Returns read operation of type. Read operation returns its input unchanged.
func NewRead(t IType) *Operation {
	return NewOperation(ReadOperationName, []IType{t}, t, func(in []outcome.IOutcome) outcome.IOutcome { return in[0] })
}

// Returns cast operation from one type to other.
func NewCast(from, to IType, body Body) *Operation {
	return NewOperation(CastOperationName, []IType{from}, to, body)
}

// Returns cast operation between types of the same value class.
// Operation returns its input unchanged, output is checked by target type.
func NewIdentity(from, to IType) *Operation {
	return NewCast(from, to, func(in []outcome.IOutcome) outcome.IOutcome { return in[0] })
}

// NoCast is a cast operation which always fails with no type caster violation.
//
// # Implements:
//   - IOperation
type NoCast struct {
	*Operation
}

func NewNoCast(from, to IType) *NoCast {
	nc := &NoCast{}
	nc.Operation = NewCast(from, to, func(in []outcome.IOutcome) outcome.IOutcome {
		return to.ErrorValue(violation(ErrNoTypeCaster(from, to), nc, in))
	})
	return nc
}

// Always returns no type caster failure. Inputs are not checked.
//
// # Panics:
//   - if some input is nil
func (nc *NoCast) Evaluate(inputs ...outcome.IOutcome) outcome.IOutcome {
	for i, in := range inputs {
		if in == nil {
			panic(ErrMissed("operation «%v» input #%d", nc, i))
		}
	}
	return nc.body(inputs)
}
