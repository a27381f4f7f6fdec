/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing

import (
	"slices"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/typing/pkg/diag"
	"github.com/voedger/typing/pkg/outcome"
)

// SubTypeWorkBench is an immutable accumulator of sub-typing.
//
// Work bench is passed through sub-typing stage operations registered in parent type.
// Every stage returns new work bench.
type SubTypeWorkBench struct {
	parent        IType
	tags          []ITag
	raw           string
	tagNames      []string
	namespace     INamespace
	none          any
	table         *SymbolTable
	subType       IType
	substitutions int
}

func (wb *SubTypeWorkBench) Parent() IType             { return wb.parent }
func (wb *SubTypeWorkBench) Tags() []ITag              { return slices.Clone(wb.tags) }
func (wb *SubTypeWorkBench) RawName() string           { return wb.raw }
func (wb *SubTypeWorkBench) TagNames() []string        { return slices.Clone(wb.tagNames) }
func (wb *SubTypeWorkBench) Namespace() INamespace     { return wb.namespace }
func (wb *SubTypeWorkBench) None() any                 { return wb.none }
func (wb *SubTypeWorkBench) SymbolTable() *SymbolTable { return wb.table.Clone() }
func (wb *SubTypeWorkBench) SubType() IType            { return wb.subType }
func (wb *SubTypeWorkBench) Substitutions() int        { return wb.substitutions }

// Returns copy of work bench changed by f.
func (wb *SubTypeWorkBench) with(f func(*SubTypeWorkBench)) *SubTypeWorkBench {
	c := *wb
	c.tags = slices.Clone(wb.tags)
	c.tagNames = slices.Clone(wb.tagNames)
	c.table = wb.table.Clone()
	f(&c)
	return &c
}

// Stage of sub-typing.
type SubTypingStage func(*SubTypeWorkBench) (*SubTypeWorkBench, error)

// Creates private sub-typing stage operation.
func NewSubTypingStage(name string, stage SubTypingStage) *Operation {
	return NewOperation(name, []IType{WorkBenchType}, WorkBenchType, Func1(stage)).WithVisibility(Visibility_Private)
}

func isSubTypingStage(op IOperation) bool {
	in := op.Inputs()
	return len(in) == 1 && in[0] == IType(WorkBenchType) && op.Output() == IType(WorkBenchType)
}

// Returns default sub-typing stages:
//   - rename,
//   - substitute parent type,
//   - tags mutate,
//   - update namespace.
func DefaultSubTypingStages() []*Operation {
	return []*Operation{
		NewSubTypingStage("sub-type-rename", SubTypeRename),
		NewSubTypingStage("sub-type-substitute-parent-type", SubTypeSubstituteParentType),
		NewSubTypingStage("sub-type-tags-mutate", SubTypeTagsMutate),
		NewSubTypingStage("sub-type-update-namespace", SubTypeUpdateNamespace),
	}
}

// Registers default sub-typing stages in type under construction.
func (b *TypeBuilder) DefaultSubTyping() *TypeBuilder {
	for _, st := range DefaultSubTypingStages() {
		b.SetSymbol(st.ID(), st)
	}
	return b
}

// Sets sub-type raw name and tag names: parent tag names followed by applied tag names.
func SubTypeRename(wb *SubTypeWorkBench) (*SubTypeWorkBench, error) {
	return wb.with(func(c *SubTypeWorkBench) {
		c.raw = wb.parent.RawName()
		c.tagNames = wb.parent.TagNames()
		for _, tag := range wb.tags {
			c.tagNames = append(c.tagNames, tag.ID().Name())
		}
		c.none = wb.parent.None()
	}), nil
}

// Copies parent symbols and substitutes parent type with sub-type in them.
func SubTypeSubstituteParentType(wb *SubTypeWorkBench) (*SubTypeWorkBench, error) {
	table := wb.parent.symbols().Filter(func(id SymbolID) bool { return id != ParentID })
	substituted, count, err := Substitute(table, map[SymbolID]IType{wb.parent.ID(): wb.subType})
	if err != nil {
		return nil, err
	}
	return wb.with(func(c *SubTypeWorkBench) {
		c.table = substituted
		c.substitutions += count
	}), nil
}

// Passes parent public symbols through mutations of all applied tags, then adds every tag
// and passes its contributions through mutations of subsequent tags. Dropped symbols are not added.
// Duplicate symbol fails sub-typing.
func SubTypeTagsMutate(wb *SubTypeWorkBench) (*SubTypeWorkBench, error) {
	table := NewSymbolTable()

	add := func(m Mutation, tags []ITag) error {
		m, ok, err := mutate(m, tags)
		if err != nil || !ok {
			return err
		}
		if logger.IsTrace() {
			logger.Trace("sub-type", wb.subType, "symbol", m.ID)
		}
		return table.AddAs(m.ID, m.Symbol)
	}

	for id, s := range wb.table.All() {
		if id.IsPrivate() {
			if err := table.AddAs(id, s); err != nil {
				return nil, err
			}
			continue
		}
		if err := add(Mutation{ID: id, Symbol: s}, wb.tags); err != nil {
			return nil, err
		}
	}

	none := wb.none
	for i, tag := range wb.tags {
		if err := table.Add(tag); err != nil {
			return nil, err
		}
		for s := range tag.Contributions() {
			if err := add(Mutation{ID: s.ID(), Symbol: s}, wb.tags[i+1:]); err != nil {
				return nil, err
			}
		}
		if n, ok, err := tag.NoneOf(wb.parent); err != nil {
			return nil, err
		} else if ok {
			none = n
		}
	}

	substituted, count, err := Substitute(table, map[SymbolID]IType{wb.parent.ID(): wb.subType})
	if err != nil {
		return nil, err
	}

	return wb.with(func(c *SubTypeWorkBench) {
		c.table = substituted
		c.substitutions += count
		c.none = none
	}), nil
}

// Places sub-type into parent type namespace.
func SubTypeUpdateNamespace(wb *SubTypeWorkBench) (*SubTypeWorkBench, error) {
	return wb.with(func(c *SubTypeWorkBench) {
		c.namespace = wb.parent
	}), nil
}

// Returns sub-type of type with tags applied.
//
// Sub-type is constructed by folding work bench through sub-typing stages of type.
// If type has no stages, or some stage fails, or sub-type is not valid, returns NoType.
// If no tags specified, returns type itself.
//
// # Panics:
//   - if some tag is nil
func (t *Type) Sub(tags ...ITag) IType {
	return subType(t, tags)
}

func subType(parent IType, tags []ITag) IType {
	for i, tag := range tags {
		if tag == nil {
			panic(ErrMissed("tag #%d for sub-type of «%v»", i, parent))
		}
	}
	if len(tags) == 0 {
		return parent
	}

	tagNames := parent.TagNames()
	for _, tag := range tags {
		tagNames = append(tagNames, tag.ID().Name())
	}
	b := NewTypeBuilder(parent.Kind(), parent, parent.RawName(), parent.Class()).
		SetTagNames(tagNames...).
		SetNone(parent.None()).
		SetMetadata(parent.Metadata().Renew())

	var stages []IOperation
	for s := range parent.Symbols(SymbolKind_Operation) {
		if op, ok := s.(IOperation); ok && isSubTypingStage(op) {
			stages = append(stages, op)
		}
	}
	if len(stages) == 0 {
		b.Disable(violation(ErrNoSubType("type «%v» has no sub-typing stages", parent), parent, tags))
		t, _ := b.Build()
		return t
	}

	wb := &SubTypeWorkBench{
		parent:    parent,
		tags:      slices.Clone(tags),
		namespace: parent,
		table:     NewSymbolTable(),
		subType:   b.Self(),
	}

	o := outcome.OneOf(WorkBenchType.Class(), wb)
	for _, st := range stages {
		o = st.Evaluate(o)
		if outcome.Failed(o) {
			b.Disable(violationOf(o.Err(), st, wb))
			break
		}
		v, ok := o.First()
		if !ok {
			b.Disable(violation(ErrNoSubType("stage «%v» dropped work bench", st), st, wb))
			break
		}
		wb = v.(*SubTypeWorkBench)
		if logger.IsVerbose() {
			logger.Verbose("sub-type", wb.subType, "stage", st.ID().Name(), "done,", wb.substitutions, "substitutions")
		}
	}

	if !b.Disabled() {
		none := wb.none
		b.SetName(wb.raw).
			SetTagNames(wb.tagNames...).
			SetNamespace(wb.namespace).
			SetNone(none)
		for id, s := range wb.table.All() {
			b.SetSymbol(id, s)
		}
	}

	sub, err := b.Build()
	if err != nil {
		return sub
	}

	for _, tag := range tags {
		if err := tag.CheckType(sub); err != nil {
			return newNoType(parent, parent.Class(), violationOf(err, tag, sub))
		}
	}
	return sub
}

func violationOf(err error, plaintiff, inspected any) *diag.Violation {
	if v, ok := diag.Find(err); ok {
		return v
	}
	return violation(ErrNoSubType("%v", err), plaintiff, inspected).WithCause(err)
}

// Substitutes types in symbols of table.
//
// Type symbols found in types map are replaced, retypable symbols which refer to types
// from map are retyped. Substitution follows chains in map, every identifier is substituted once.
// Returns new table and count of substituted types.
func Substitute(table *SymbolTable, types map[SymbolID]IType) (*SymbolTable, int, error) {
	out := NewSymbolTable()
	count := 0
	for id, s := range table.All() {
		if id == ParentID {
			out.Set(id, s)
			continue
		}

		key, sym := id, s
		switch v := s.(type) {
		case IType:
			if n, ok := substitution(v, types); ok {
				if id == v.ID() {
					key = n.ID()
				}
				sym = n
				count++
			}
		case IRetypable:
			old := v.Types()
			n := make([]IType, len(old))
			changed := 0
			for i, t := range old {
				n[i] = t
				if r, ok := substitution(t, types); ok {
					n[i] = r
					changed++
				}
			}
			if changed > 0 {
				r, err := v.Retype(v.ID().Name(), n)
				if err != nil {
					return nil, count, err
				}
				if id == v.ID() {
					key = r.ID()
				}
				sym = r
				count += changed
			}
		}

		if err := out.AddAs(key, sym); err != nil {
			return nil, count, err
		}
	}
	return out, count, nil
}

func substitution(t IType, types map[SymbolID]IType) (IType, bool) {
	visited := make(map[SymbolID]bool)
	cur, found := t, false
	for !visited[cur.ID()] {
		visited[cur.ID()] = true
		n, ok := types[cur.ID()]
		if !ok || n == cur {
			break
		}
		cur, found = n, true
	}
	return cur, found && cur != t
}
