/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package sys

import (
	"reflect"

	"github.com/spf13/cast"

	"github.com/voedger/typing/pkg/typing"
)

// Names of standard tags
const (
	PositiveName = "positive"
	NonZeroName  = "nonzero"
	NonEmptyName = "nonempty"
	UnsignedName = "unsigned"
)

func (s *Sys) buildTags() error {
	s.Positive = typing.NewTag(PositiveName).
		With(typing.MinExcl(0)).
		SetNone(one).
		SetTypeConstraint(numeric)

	s.NonZero = typing.NewTag(NonZeroName).
		With(typing.NewConstraint("nonzero", func(v any) error {
			f, err := cast.ToFloat64E(v)
			if err != nil {
				return err
			}
			if f == 0 {
				return typing.ErrOutOfBounds("«%v» is zero", v)
			}
			return nil
		})).
		SetNone(one).
		SetTypeConstraint(numeric)

	s.NonEmpty = typing.NewTag(NonEmptyName).
		With(typing.MinLen(1)).
		SetNone(func(parent typing.IType) (any, error) {
			if n, ok := parent.None().(string); ok && n != "" {
				return n, nil
			}
			return "-", nil
		}).
		SetTypeConstraint(func(t typing.IType) error {
			if t.Class().Kind() != reflect.String {
				return typing.ErrIncompatible("«%v» is not a string type", t)
			}
			return nil
		})

	s.Unsigned = typing.NewTag(UnsignedName).
		With(typing.MinIncl(0)).
		AddMutation("drop-negative", func(m typing.Mutation) (typing.Mutation, bool) {
			if m.ID.Kind() == typing.SymbolKind_Operation {
				switch m.ID.Name() {
				case "neg", "sub":
					return m, false
				}
			}
			return m, true
		}).
		SetTypeConstraint(numeric)

	for _, t := range s.Tags() {
		if err := s.Root.Add(t); err != nil {
			return err
		}
	}
	return nil
}

// Returns one of parent value class.
func one(parent typing.IType) (any, error) {
	v := reflect.ValueOf(1)
	if !v.CanConvert(parent.Class()) {
		return nil, typing.ErrIncompatible("one is not convertible to «%v»", parent.Class())
	}
	return v.Convert(parent.Class()).Interface(), nil
}

func numeric(t typing.IType) error {
	switch t.Class().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return nil
	}
	return typing.ErrIncompatible("«%v» is not a numeric type", t)
}
