/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/voedger/typing/pkg/outcome"
)

func constantID(name string) SymbolID {
	return NewSymbolID(name, SymbolKind_Term, Visibility_Public)
}

// Returns value if it satisfies type, failure of type otherwise.
func checked(t IType, o outcome.IOutcome) outcome.IOutcome {
	if err := t.CheckValue(o); err != nil {
		if outcome.Failed(o) && o.Class() == t.Class() {
			return o
		}
		return t.ErrorValue(err)
	}
	return o
}

// Constant is a term with resolved value.
//
// # Implements:
//   - ITerm
type Constant struct {
	id        SymbolID
	valueType IType
	value     outcome.IOutcome
	meta      *Metadata
}

// Creates constant term. Value is checked by type, failed check makes constant value failure.
//
// # Panics:
//   - if type or value is nil
func NewConstant(t IType, value outcome.IOutcome) *Constant {
	if t == nil {
		panic(ErrMissed("constant type"))
	}
	if value == nil {
		panic(ErrMissed("constant value of type «%v»", t))
	}
	return &Constant{
		id:        constantID(value.String()),
		valueType: t,
		value:     checked(t, value),
		meta:      NewMetadata(),
	}
}

func (c *Constant) ID() SymbolID            { return c.id }
func (c *Constant) String() string          { return c.id.Name() }
func (c *Constant) ValueType() IType        { return c.valueType }
func (c *Constant) Value() outcome.IOutcome { return c.value }
func (c *Constant) Metadata() *Metadata     { return c.meta }
func (c *Constant) Types() []IType          { return []IType{c.valueType} }

func (c *Constant) Rename(name string) ISymbol {
	r := *c
	r.id = c.id.WithName(name)
	return &r
}

// Returns constant of new type. Value is checked by new type.
func (c *Constant) Retype(name string, types []IType) (ISymbol, error) {
	if err := TypesMustHaveSameValueClasses(c.Types(), types); err != nil {
		return nil, violation(ErrIncompatible("retype term «%v» to «%v»", c, name), c, types).WithCause(err)
	}
	return &Constant{
		id:        c.id.WithName(name),
		valueType: types[0],
		value:     checked(types[0], c.value),
		meta:      c.meta.Renew(),
	}, nil
}

// BlockingConstant is a term with pending value. Value is resolved once and checked by type.
//
// # Implements:
//   - ITerm
type BlockingConstant struct {
	id        SymbolID
	valueType IType
	pending   outcome.IOutcome
	meta      *Metadata

	mx       sync.Mutex
	resolved outcome.IOutcome
}

// # Panics:
//   - if type or value is nil
func NewBlockingConstant(t IType, pending outcome.IOutcome) *BlockingConstant {
	if t == nil {
		panic(ErrMissed("constant type"))
	}
	if pending == nil {
		panic(ErrMissed("constant value of type «%v»", t))
	}
	bc := &BlockingConstant{
		id:        constantID(pending.String()),
		valueType: t,
		pending:   pending,
		meta:      NewMetadata(),
	}
	if err := t.CheckValue(pending); err != nil {
		bc.resolved = t.ErrorValue(err)
	}
	return bc
}

func (bc *BlockingConstant) ID() SymbolID        { return bc.id }
func (bc *BlockingConstant) String() string      { return bc.id.Name() }
func (bc *BlockingConstant) ValueType() IType    { return bc.valueType }
func (bc *BlockingConstant) Metadata() *Metadata { return bc.meta }
func (bc *BlockingConstant) Types() []IType      { return []IType{bc.valueType} }

// Returns resolved value. Blocks until pending value is resolved.
func (bc *BlockingConstant) Value() outcome.IOutcome {
	return bc.Await(context.Background())
}

// Resolves value. If context is done before resolution, returns failure and does not memoize it.
func (bc *BlockingConstant) Await(ctx context.Context) outcome.IOutcome {
	bc.mx.Lock()
	defer bc.mx.Unlock()

	if bc.resolved != nil {
		return bc.resolved
	}
	r := bc.pending.Await(ctx)
	if ctx.Err() != nil {
		return r
	}
	bc.resolved = checked(bc.valueType, r)
	return bc.resolved
}

func (bc *BlockingConstant) Rename(name string) ISymbol {
	return &BlockingConstant{
		id:        bc.id.WithName(name),
		valueType: bc.valueType,
		pending:   bc.pending,
		meta:      bc.meta,
	}
}

func (bc *BlockingConstant) Retype(name string, types []IType) (ISymbol, error) {
	if err := TypesMustHaveSameValueClasses(bc.Types(), types); err != nil {
		return nil, violation(ErrIncompatible("retype term «%v» to «%v»", bc, name), bc, types).WithCause(err)
	}
	r := NewBlockingConstant(types[0], bc.pending)
	r.id = bc.id.WithName(name)
	r.meta = bc.meta.Renew()
	return r, nil
}

// Expression is a term which represents operation applied to input terms.
// Expression is evaluated lazily once, result is checked by value type.
//
// # Implements:
//   - ITerm
type Expression struct {
	id        SymbolID
	op        IOperation
	inputs    []ITerm
	valueType IType
	meta      *Metadata

	once     sync.Once
	resolved outcome.IOutcome
}

// Creates expression. Value type of expression is operation output type.
//
// # Panics:
//   - if operation or some input is nil
func NewExpression(op IOperation, inputs ...ITerm) *Expression {
	if op == nil {
		panic(ErrMissed("expression operation"))
	}
	for i, in := range inputs {
		if in == nil {
			panic(ErrMissed("expression «%v» input #%d", op, i))
		}
	}
	return &Expression{
		id:        constantID(expressionName(op, inputs, op.Output())),
		op:        op,
		inputs:    inputs,
		valueType: op.Output(),
		meta:      NewMetadata(),
	}
}

// Renders expression name, like «add ( 1, 2 ) : int»
func expressionName(op IOperation, inputs []ITerm, out IType) string {
	s := make([]string, 0, len(inputs))
	for _, in := range inputs {
		s = append(s, in.String())
	}
	return fmt.Sprintf("%s ( %s ) : %v", op.ID().Name(), strings.Join(s, ", "), out)
}

func (e *Expression) ID() SymbolID          { return e.id }
func (e *Expression) String() string        { return e.id.Name() }
func (e *Expression) ValueType() IType      { return e.valueType }
func (e *Expression) Metadata() *Metadata   { return e.meta }
func (e *Expression) Operation() IOperation { return e.op }
func (e *Expression) Types() []IType        { return []IType{e.valueType} }

// Returns input terms.
func (e *Expression) Inputs() []ITerm { return append([]ITerm(nil), e.inputs...) }

// Evaluates expression once.
func (e *Expression) Value() outcome.IOutcome {
	e.once.Do(func() {
		in := make([]outcome.IOutcome, 0, len(e.inputs))
		for _, t := range e.inputs {
			in = append(in, t.Value())
		}
		e.resolved = checked(e.valueType, e.op.Evaluate(in...))
	})
	return e.resolved
}

func (e *Expression) Rename(name string) ISymbol {
	r := NewExpression(e.op, e.inputs...)
	r.id = e.id.WithName(name)
	r.valueType = e.valueType
	r.meta = e.meta
	return r
}

// Returns expression with new value type. Operation result is checked by new type.
func (e *Expression) Retype(name string, types []IType) (ISymbol, error) {
	if err := TypesMustHaveSameValueClasses(e.Types(), types); err != nil {
		return nil, violation(ErrIncompatible("retype term «%v» to «%v»", e, name), e, types).WithCause(err)
	}
	r := NewExpression(e.op, e.inputs...)
	r.id = e.id.WithName(name)
	r.valueType = types[0]
	r.meta = e.meta.Renew()
	return r, nil
}

// Variable is a mutable term. Every new value is checked by type.
// Variable is safe for concurrent use.
//
// # Implements:
//   - ITerm
type Variable struct {
	id        SymbolID
	valueType IType
	meta      *Metadata

	mx    sync.RWMutex
	value outcome.IOutcome
}

// Creates variable with none value of type.
//
// # Panics:
//   - if name is empty
//   - if type is nil
func NewVariable(name string, t IType) *Variable {
	if t == nil {
		panic(ErrMissed("variable «%v» type", name))
	}
	return &Variable{
		id:        constantID(name),
		valueType: t,
		meta:      NewMetadata(),
		value:     t.NoneTerm().Value(),
	}
}

func (v *Variable) ID() SymbolID        { return v.id }
func (v *Variable) String() string      { return v.id.Name() }
func (v *Variable) ValueType() IType    { return v.valueType }
func (v *Variable) Metadata() *Metadata { return v.meta }
func (v *Variable) Types() []IType      { return []IType{v.valueType} }

func (v *Variable) Value() outcome.IOutcome {
	v.mx.RLock()
	defer v.mx.RUnlock()
	return v.value
}

// Sets new value. Returns violation and keeps current value if new value does not satisfy type.
func (v *Variable) Set(value outcome.IOutcome) error {
	if value == nil {
		panic(ErrMissed("variable «%v» value", v))
	}
	value = value.Await(context.Background())
	if err := v.valueType.CheckValue(value); err != nil {
		return err
	}
	v.mx.Lock()
	v.value = value
	v.mx.Unlock()
	return nil
}

func (v *Variable) Rename(name string) ISymbol {
	r := NewVariable(name, v.valueType)
	r.value = v.Value()
	r.meta = v.meta
	return r
}

func (v *Variable) Retype(name string, types []IType) (ISymbol, error) {
	if err := TypesMustHaveSameValueClasses(v.Types(), types); err != nil {
		return nil, violation(ErrIncompatible("retype term «%v» to «%v»", v, name), v, types).WithCause(err)
	}
	r := &Variable{
		id:        v.id.WithName(name),
		valueType: types[0],
		meta:      v.meta.Renew(),
		value:     checked(types[0], v.Value()),
	}
	return r, nil
}
