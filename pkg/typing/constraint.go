/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"slices"
)

// Constraint is a named predicate over values of type.
// Constraints are placed into type symbol table and checked by Type.CheckValue.
//
// # Implements:
//   - IConstraint
type Constraint struct {
	id    SymbolID
	kind  ConstraintKind
	value any
	check func(any) error
}

func newConstraint(kind ConstraintKind, value any, check func(any) error) *Constraint {
	return &Constraint{
		id:    NewSymbolID(fmt.Sprintf("%s: %v", kind.TrimString(), value), SymbolKind_Constraint, Visibility_Public),
		kind:  kind,
		value: value,
		check: check,
	}
}

// Returns new constraint with arbitrary predicate.
//
// # Panics:
//   - if name is empty
//   - if check is nil
func NewConstraint(name string, check func(v any) error) *Constraint {
	if check == nil {
		panic(ErrMissed("constraint «%v» check function", name))
	}
	return &Constraint{
		id:    NewSymbolID(name, SymbolKind_Constraint, Visibility_Public),
		kind:  ConstraintKind_Func,
		check: check,
	}
}

func (c *Constraint) ID() SymbolID                   { return c.id }
func (c *Constraint) ConstraintKind() ConstraintKind { return c.kind }
func (c *Constraint) Value() any                     { return c.value }
func (c *Constraint) String() string                 { return c.id.Name() }

func (c *Constraint) Check(v any) error { return c.check(v) }

func (c *Constraint) Rename(name string) ISymbol {
	r := *c
	r.id = c.id.WithName(name)
	return &r
}

// Return new minimum length constraint for strings, bytes, slices and maps.
func MinLen(v int) *Constraint {
	return newConstraint(ConstraintKind_MinLen, v, func(a any) error {
		l, err := lengthOf(a)
		if err != nil {
			return err
		}
		if l < v {
			return ErrOutOfBounds("length %d of «%v» is less than %d", l, a, v)
		}
		return nil
	})
}

// Return new maximum length constraint for strings, bytes, slices and maps.
//
// # Panics:
//   - if value is zero or negative
func MaxLen(v int) *Constraint {
	if v <= 0 {
		panic(ErrOutOfBounds("maximum length %d should be positive", v))
	}
	return newConstraint(ConstraintKind_MaxLen, v, func(a any) error {
		l, err := lengthOf(a)
		if err != nil {
			return err
		}
		if l > v {
			return ErrOutOfBounds("length %d of «%v» is greater than %d", l, a, v)
		}
		return nil
	})
}

// Return new pattern constraint for strings and bytes.
//
// # Panics:
//   - if value is not valid regular expression
func Pattern(v string) *Constraint {
	re, err := regexp.Compile(v)
	if err != nil {
		panic(err)
	}
	return newConstraint(ConstraintKind_Pattern, re, func(a any) error {
		var ok bool
		switch s := a.(type) {
		case string:
			ok = re.MatchString(s)
		case []byte:
			ok = re.Match(s)
		default:
			return ErrIncompatible("pattern «%v» for «%v» (%T)", re, a, a)
		}
		if !ok {
			return ErrInvalid("«%v» does not match pattern «%v»", a, re)
		}
		return nil
	})
}

// Return new minimum inclusive constraint for numeric values.
//
// # Panics:
//   - if value is NaN
//   - if value is +infinite
func MinIncl(v float64) *Constraint {
	mustLowerBound(v, "minimum inclusive")
	return numericConstraint(ConstraintKind_MinIncl, v, func(n float64) bool { return n >= v }, "less than")
}

// Return new minimum exclusive constraint for numeric values.
//
// # Panics:
//   - if value is NaN
//   - if value is +infinite
func MinExcl(v float64) *Constraint {
	mustLowerBound(v, "minimum exclusive")
	return numericConstraint(ConstraintKind_MinExcl, v, func(n float64) bool { return n > v }, "less or equal to")
}

// Return new maximum inclusive constraint for numeric values.
//
// # Panics:
//   - if value is NaN
//   - if value is -infinite
func MaxIncl(v float64) *Constraint {
	mustUpperBound(v, "maximum inclusive")
	return numericConstraint(ConstraintKind_MaxIncl, v, func(n float64) bool { return n <= v }, "greater than")
}

// Return new maximum exclusive constraint for numeric values.
//
// # Panics:
//   - if value is NaN
//   - if value is -infinite
func MaxExcl(v float64) *Constraint {
	mustUpperBound(v, "maximum exclusive")
	return numericConstraint(ConstraintKind_MaxExcl, v, func(n float64) bool { return n < v }, "greater or equal to")
}

type enumerable interface {
	~string | ~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Return new enumeration constraint.
//
// Passed values will be sorted and duplicates removed before placing
// into returning constraint.
//
// # Panics:
//   - if enumeration values list is empty
func Enum[T enumerable](v ...T) *Constraint {
	if len(v) == 0 {
		panic(ErrMissed("enumeration values (%T)", v))
	}
	c := slices.Clone(v)
	slices.Sort(c)
	c = slices.Compact(c)
	return newConstraint(ConstraintKind_Enum, c, func(a any) error {
		t, ok := a.(T)
		if !ok {
			return ErrIncompatible("enumeration %v for «%v» (%T)", c, a, a)
		}
		if _, found := slices.BinarySearch(c, t); !found {
			return ErrOutOfBounds("«%v» is not one of %v", a, c)
		}
		return nil
	})
}

func numericConstraint(kind ConstraintKind, v float64, ok func(float64) bool, violated string) *Constraint {
	return newConstraint(kind, v, func(a any) error {
		n, err := numberOf(a)
		if err != nil {
			return err
		}
		if !ok(n) {
			return ErrOutOfBounds("«%v» is %s %v", a, violated, v)
		}
		return nil
	})
}

func mustLowerBound(v float64, what string) {
	if math.IsNaN(v) {
		panic(ErrInvalid("%s value is NaN", what))
	}
	if math.IsInf(v, 1) {
		panic(ErrInvalid("%s value is positive infinity", what))
	}
}

func mustUpperBound(v float64, what string) {
	if math.IsNaN(v) {
		panic(ErrInvalid("%s value is NaN", what))
	}
	if math.IsInf(v, -1) {
		panic(ErrInvalid("%s value is negative infinity", what))
	}
}

func lengthOf(a any) (int, error) {
	v := reflect.ValueOf(a)
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return v.Len(), nil
	}
	return 0, ErrIncompatible("length of «%v» (%T)", a, a)
}

func numberOf(a any) (float64, error) {
	v := reflect.ValueOf(a)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	}
	return 0, ErrIncompatible("numeric constraint for «%v» (%T)", a, a)
}
