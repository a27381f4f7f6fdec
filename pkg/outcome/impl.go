/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package outcome

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
)

var ErrNoValue = errors.New("no value")

type outcome struct {
	kind   Kind
	class  reflect.Type
	values []any
	err    error
}

// Returns outcome with single present value. Class is taken from value.
//
// # Panics:
//   - if value is nil
func One(v any) IOutcome {
	if v == nil {
		panic(errors.New("outcome value is nil"))
	}
	return &outcome{kind: Kind_One, class: reflect.TypeOf(v), values: []any{v}}
}

// Returns outcome with single present value of specified class.
//
// # Panics:
//   - if class is nil
//   - if value is nil
//   - if value is not assignable to class
func OneOf(class reflect.Type, v any) IOutcome {
	mustClass(class)
	if v == nil {
		panic(errors.New("outcome value is nil"))
	}
	if vc := reflect.TypeOf(v); !vc.AssignableTo(class) {
		panic(fmt.Errorf("value class «%v» is not assignable to «%v»", vc, class))
	}
	return &outcome{kind: Kind_One, class: class, values: []any{v}}
}

// Returns typed outcome with single present value.
func Of[T any](v T) IOutcome {
	return OneOf(reflect.TypeFor[T](), v)
}

// Returns outcome with present values of specified class.
//
// # Panics:
//   - if class is nil
//   - if some value is nil or not assignable to class
func Many(class reflect.Type, vv ...any) IOutcome {
	mustClass(class)
	values := make([]any, 0, len(vv))
	for i, v := range vv {
		if v == nil {
			panic(fmt.Errorf("outcome value #%d is nil", i))
		}
		if vc := reflect.TypeOf(v); !vc.AssignableTo(class) {
			panic(fmt.Errorf("value #%d class «%v» is not assignable to «%v»", i, vc, class))
		}
		values = append(values, v)
	}
	return &outcome{kind: Kind_Many, class: class, values: values}
}

// Returns absent outcome of specified class. Diagnostic may be nil.
func No(class reflect.Type, diagnostic error) IOutcome {
	mustClass(class)
	return &outcome{kind: Kind_No, class: class, err: diagnostic}
}

// Returns failure outcome of specified class.
//
// # Panics:
//   - if class is nil
//   - if err is nil
func Err(class reflect.Type, err error) IOutcome {
	mustClass(class)
	if err == nil {
		panic(errors.New("outcome error is nil"))
	}
	return &outcome{kind: Kind_Error, class: class, err: err}
}

func (o *outcome) Kind() Kind          { return o.kind }
func (o *outcome) Class() reflect.Type { return o.class }
func (o *outcome) HasValue() bool      { return len(o.values) > 0 }
func (o *outcome) Len() int            { return len(o.values) }
func (o *outcome) Err() error          { return o.err }
func (o *outcome) Blocking() bool      { return false }

func (o *outcome) Values() []any {
	return append([]any(nil), o.values...)
}

func (o *outcome) First() (any, bool) {
	if len(o.values) == 0 {
		return nil, false
	}
	return o.values[0], true
}

func (o *outcome) Await(context.Context) IOutcome { return o }

func (o *outcome) String() string {
	switch o.kind {
	case Kind_One:
		return fmt.Sprint(o.values[0])
	case Kind_Many:
		s := make([]string, 0, len(o.values))
		for _, v := range o.values {
			s = append(s, fmt.Sprint(v))
		}
		return "[" + strings.Join(s, ", ") + "]"
	case Kind_No:
		if o.err != nil {
			return fmt.Sprintf("no %v: %v", o.class, o.err)
		}
		return fmt.Sprintf("no %v", o.class)
	case Kind_Error:
		return fmt.Sprintf("error %v: %v", o.class, o.err)
	}
	return o.kind.String()
}

type pending struct {
	class   reflect.Type
	resolve func(context.Context) IOutcome

	mx       sync.Mutex
	resolved atomic.Pointer[IOutcome]
}

// Returns pending outcome of specified class, resolved by calling resolve function.
//
// Resolve function is called at most once with successful result. If it returns nil,
// pending resolves to absent outcome.
//
// # Panics:
//   - if class is nil
//   - if resolve is nil
func Pending(class reflect.Type, resolve func(context.Context) IOutcome) IOutcome {
	mustClass(class)
	if resolve == nil {
		panic(errors.New("pending resolve function is nil"))
	}
	return &pending{class: class, resolve: resolve}
}

func (p *pending) Kind() Kind          { return Kind_Pending }
func (p *pending) Class() reflect.Type { return p.class }
func (p *pending) HasValue() bool      { return false }
func (p *pending) Values() []any       { return nil }
func (p *pending) First() (any, bool)  { return nil, false }
func (p *pending) Len() int            { return 0 }
func (p *pending) Err() error          { return nil }
func (p *pending) String() string      { return fmt.Sprintf("pending %v", p.class) }

func (p *pending) Blocking() bool { return p.resolved.Load() == nil }

func (p *pending) Await(ctx context.Context) IOutcome {
	if r := p.resolved.Load(); r != nil {
		return *r
	}

	p.mx.Lock()
	defer p.mx.Unlock()

	if r := p.resolved.Load(); r != nil {
		return *r
	}
	if err := ctx.Err(); err != nil {
		return Err(p.class, err)
	}

	r := p.resolve(ctx)
	if err := ctx.Err(); err != nil {
		return Err(p.class, err)
	}
	if r == nil {
		r = No(p.class, nil)
	}
	r = r.Await(ctx)
	if err := ctx.Err(); err != nil {
		return Err(p.class, err)
	}
	p.resolved.Store(&r)
	return r
}

func mustClass(class reflect.Type) {
	if class == nil {
		panic(errors.New("outcome class is nil"))
	}
}
