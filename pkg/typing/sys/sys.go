/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package sys

import (
	"reflect"
	"strings"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/typing/pkg/diag"
	"github.com/voedger/typing/pkg/typing"
)

// Names of standard types
const (
	BoolName   = "bool"
	StringName = "string"
	FloatName  = "float"
	IntName    = "int"
)

// Sys is a root namespace with standard types and tags.
//
// Every standard type supports default sub-typing.
type Sys struct {
	Root *typing.RootNamespace

	Bool   typing.IType
	String typing.IType
	Float  typing.IType
	Int    typing.IType

	Positive *typing.Tag
	NonZero  *typing.Tag
	NonEmpty *typing.Tag
	Unsigned *typing.Tag
}

// Creates new root namespace with standard types and tags.
//
// Violations are reported to sink. If sink is nil, violations are written to verbose log.
func New(name string, sink diag.ISink) (*Sys, error) {
	s := &Sys{Root: typing.NewRootNamespace(name, sink)}

	for _, build := range []func() error{
		s.buildBool,
		s.buildString,
		s.buildFloat,
		s.buildInt,
		s.buildTags,
	} {
		if err := build(); err != nil {
			return nil, err
		}
	}

	if logger.IsVerbose() {
		logger.Verbose("standard namespace", s.Root, "is ready")
	}
	return s, nil
}

func (s *Sys) buildBool() (err error) {
	b := typing.RootKind.TypeBuilder(s.Root, BoolName, reflect.TypeFor[bool]()).DefaultSubTyping()
	self := b.Self()
	b.With(
		typing.NewOperation("not", []typing.IType{self}, self, typing.Func1(not)),
		typing.NewOperation("and", []typing.IType{self, self}, self, typing.Func2(and)),
		typing.NewOperation("or", []typing.IType{self, self}, self, typing.Func2(or)),
	)
	s.Bool, err = b.Build()
	return err
}

func (s *Sys) buildString() (err error) {
	b := typing.RootKind.TypeBuilder(s.Root, StringName, reflect.TypeFor[string]()).DefaultSubTyping()
	self := b.Self()
	b.With(
		typing.NewVariadicOperation("concat", self, typing.MaxArity, self, typing.FuncN(concat)),
		typing.NewOperation("upper", []typing.IType{self}, self, typing.Func1(upper)),
		typing.NewOperation("lower", []typing.IType{self}, self, typing.Func1(lower)),
		typing.NewOperation("trim", []typing.IType{self}, self, typing.Func1(trim)),
		typing.NewOperation("eq", []typing.IType{self, self}, s.Bool, typing.Func2(equal[string])),
		typing.NewCast(self, s.Bool, typing.Func1(toBool)),
		typing.NewCast(s.Bool, self, typing.Func1(toString)),
	)
	s.String, err = b.Build()
	return err
}

func (s *Sys) buildFloat() (err error) {
	b := typing.RootKind.TypeBuilder(s.Root, FloatName, reflect.TypeFor[float64]()).DefaultSubTyping()
	self := b.Self()
	b.With(arithmetic[float64](self, s.Bool)...)
	b.With(
		typing.NewCast(self, s.String, typing.Func1(toString)),
		typing.NewCast(s.String, self, typing.Func1(toFloat)),
	)
	s.Float, err = b.Build()
	return err
}

func (s *Sys) buildInt() (err error) {
	b := typing.RootKind.TypeBuilder(s.Root, IntName, reflect.TypeFor[int64]()).DefaultSubTyping()
	self := b.Self()
	b.With(arithmetic[int64](self, s.Bool)...)
	b.With(
		typing.NewOperation("mod", []typing.IType{self, self}, self, typing.Func2(mod[int64])),
		typing.NewOperation("add3", []typing.IType{self, self, self}, self, typing.Func3(add3[int64])),
		typing.NewOperation("len", []typing.IType{s.String}, self, typing.Func1(length)),
		typing.NewCast(self, s.Float, typing.Func1(toFloat)),
		typing.NewCast(s.Float, self, typing.Func1(toInt)),
		typing.NewCast(self, s.String, typing.Func1(toString)),
		typing.NewCast(s.String, self, typing.Func1(toInt)),
	)
	s.Int, err = b.Build()
	return err
}

// Returns standard types in resolution order: int, float, string, bool.
func (s *Sys) Types() []typing.IType {
	return []typing.IType{s.Int, s.Float, s.String, s.Bool}
}

// Returns standard tags.
func (s *Sys) Tags() []*typing.Tag {
	return []*typing.Tag{s.Positive, s.NonZero, s.NonEmpty, s.Unsigned}
}

// Returns tag registered in root namespace by name.
func (s *Sys) Tag(name string) (*typing.Tag, error) {
	t, ok := typing.SymbolOf[*typing.Tag](s.Root, typing.NewSymbolID(name, typing.SymbolKind_Tag, typing.Visibility_Public))
	if !ok {
		return nil, typing.ErrNotFound("tag «%v» in «%v»", name, s.Root)
	}
	return t, nil
}

// Returns type by name.
//
// Name is raw name of registered type, optionally followed by tag names in brackets,
// like «int[positive, nonzero]». Sub-type is derived by applying tags in order.
func (s *Sys) Type(name string) (typing.IType, error) {
	raw, tagNames, err := splitTypeName(name)
	if err != nil {
		return nil, err
	}

	var t typing.IType
	for r := range s.Root.Types() {
		if r.RawName() == raw && len(r.TagNames()) == 0 {
			t = r
			break
		}
	}
	if t == nil {
		return nil, typing.ErrNotFound("type «%v» in «%v»", raw, s.Root)
	}
	if len(tagNames) == 0 {
		return t, nil
	}

	tags := make([]typing.ITag, 0, len(tagNames))
	for _, n := range tagNames {
		tag, err := s.Tag(n)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	sub := t.Sub(tags...)
	if v := sub.Violation(); v != nil {
		return nil, v
	}
	return sub, nil
}

func splitTypeName(name string) (raw string, tags []string, err error) {
	name = strings.TrimSpace(name)
	open := strings.IndexByte(name, '[')
	if open < 0 {
		return name, nil, nil
	}
	if !strings.HasSuffix(name, "]") {
		return "", nil, typing.ErrInvalid("type name «%v»: missed closing bracket", name)
	}
	raw = strings.TrimSpace(name[:open])
	for _, t := range strings.Split(name[open+1:len(name)-1], ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return raw, tags, nil
}
