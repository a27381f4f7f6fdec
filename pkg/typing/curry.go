/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing

import (
	"fmt"
	"slices"
	"strings"

	"github.com/voedger/typing/pkg/outcome"
)

// Curried is an operation closed over first inputs of base operation.
//
// Evaluation of curried operation with remaining inputs is equal to evaluation of base operation
// with all inputs. Bound inputs are checked on evaluation, so failed bound input is reported
// with its index in base operation.
//
// # Implements:
//   - IOperation
type Curried struct {
	id    SymbolID
	base  *Operation
	bound []outcome.IOutcome
}

func newCurried(named ISymbol, base *Operation, bound []outcome.IOutcome) *Curried {
	for i, in := range bound {
		if in == nil {
			panic(ErrMissed("operation «%v» curried input #%d", base, i))
		}
	}
	k := len(bound)
	if base.variadic {
		if k < 1 || k > base.maxArity {
			panic(ErrOutOfBounds("curry %d inputs of variadic operation «%v», should be from 1 to %d", k, base, base.maxArity))
		}
	} else if k < 1 || k >= base.maxArity {
		panic(ErrOutOfBounds("curry %d inputs of operation «%v», should be from 1 to %d", k, base, base.maxArity-1))
	}

	c := &Curried{base: base, bound: slices.Clone(bound)}
	c.id = NewOperationID(curriedName(named.ID().Name(), bound), base.id.Visibility(), c.Inputs(), base.output, base.variadic)
	return c
}

// Renders curried operation name, like «add3 ( 1, 2 )»
func curriedName(name string, bound []outcome.IOutcome) string {
	s := make([]string, 0, len(bound))
	for _, in := range bound {
		s = append(s, in.String())
	}
	return fmt.Sprintf("%s ( %s )", name, strings.Join(s, ", "))
}

func (c *Curried) ID() SymbolID   { return c.id }
func (c *Curried) String() string { return c.id.String() }
func (c *Curried) Output() IType  { return c.base.output }
func (c *Curried) Variadic() bool { return c.base.variadic }

// Returns base operation.
func (c *Curried) Base() *Operation { return c.base }

// Returns bound inputs.
func (c *Curried) Bound() []outcome.IOutcome { return slices.Clone(c.bound) }

func (c *Curried) Inputs() []IType {
	if c.base.variadic {
		return c.base.Inputs()
	}
	return slices.Clone(c.base.inputs[len(c.bound):])
}

func (c *Curried) Arity() int { return c.base.maxArity - len(c.bound) }

// Returns types of base operation, bound inputs included.
func (c *Curried) Types() []IType { return c.base.Types() }

func (c *Curried) Evaluate(inputs ...outcome.IOutcome) outcome.IOutcome {
	if partial(c, len(inputs)) {
		return outcome.OneOf(OperationClass, c.Curry(inputs...))
	}
	if !c.base.variadic && len(inputs) == 0 {
		return c.base.output.ErrorValue(violation(ErrOutOfBounds("operation «%v» expects %d inputs, got 0", c, c.Arity()), c, 0))
	}
	all := make([]outcome.IOutcome, 0, len(c.bound)+len(inputs))
	all = append(all, c.bound...)
	all = append(all, inputs...)
	return c.base.Evaluate(all...)
}

// Returns operation closed over bound and specified inputs.
//
// # Panics:
//   - if some input is nil
//   - if inputs count is out of remaining arity bounds
func (c *Curried) Curry(inputs ...outcome.IOutcome) IOperation {
	if len(inputs) == 0 {
		panic(ErrOutOfBounds("curry 0 inputs of operation «%v»", c))
	}
	all := make([]outcome.IOutcome, 0, len(c.bound)+len(inputs))
	all = append(all, c.bound...)
	all = append(all, inputs...)
	return newCurried(c.base, c.base, all)
}

func (c *Curried) Rename(name string) ISymbol {
	r := *c
	r.id = c.id.WithName(name)
	return &r
}

// Returns curried operation over retyped base operation.
// Types are types of base operation, bound inputs included. Bound inputs are checked by new types on evaluation.
func (c *Curried) Retype(name string, types []IType) (ISymbol, error) {
	if err := TypesMustHaveSameValueClasses(c.Types(), types); err != nil {
		return nil, violation(ErrIncompatible("retype operation «%v» to «%v»", c, name), c, types).WithCause(err)
	}
	b, err := c.base.Retype(c.base.id.Name(), types)
	if err != nil {
		return nil, err
	}
	r := newCurried(b, b.(*Operation), c.bound)
	r.id = r.id.WithName(name)
	return r, nil
}
