/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing

import (
	"reflect"
	"slices"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/typing/pkg/diag"
	"github.com/voedger/typing/pkg/outcome"
)

// TypeBuilder is a single-use construction context of type.
//
// Every setter revalidates builder state. Invalid builder may become valid after further changes.
// Disabled builder never becomes valid. Successful Build consumes builder: second Build returns
// the same type. Failed Build disables builder: every further Build returns the same NoType.
//
// # Panics:
//   - on any change after successful Build
type TypeBuilder struct {
	kind       IKind
	class      reflect.Type
	table      *SymbolTable
	raw        string
	tags       []string
	meta       *Metadata
	namespace  INamespace
	noneGen    func() (any, error)
	visibility Visibility

	violation *diag.Violation
	permanent *diag.Violation

	reserved *Type
	built    IType
	failed   *NoType
}

// Creates new type builder.
//
// Default none value is zero value of class.
//
// # Panics:
//   - if kind is nil
//   - if namespace is nil
//   - if class is nil
func NewTypeBuilder(kind IKind, ns INamespace, raw string, class reflect.Type) *TypeBuilder {
	if kind == nil {
		panic(ErrMissed("kind of type «%v»", raw))
	}
	if ns == nil {
		panic(ErrMissed("namespace of type «%v»", raw))
	}
	if class == nil {
		panic(ErrMissed("value class of type «%v»", raw))
	}
	b := &TypeBuilder{
		kind:      kind,
		class:     class,
		table:     NewSymbolTable(),
		raw:       raw,
		meta:      NewMetadata(),
		namespace: ns,
		noneGen: func() (any, error) {
			z := reflect.Zero(class)
			if !z.CanInterface() {
				return nil, nil
			}
			return z.Interface(), nil
		},
	}
	return b.revalidate()
}

func (b *TypeBuilder) Kind() IKind            { return b.kind }
func (b *TypeBuilder) Class() reflect.Type    { return b.class }
func (b *TypeBuilder) RawName() string        { return b.raw }
func (b *TypeBuilder) TagNames() []string     { return slices.Clone(b.tags) }
func (b *TypeBuilder) Namespace() INamespace  { return b.namespace }
func (b *TypeBuilder) Metadata() *Metadata    { return b.meta }
func (b *TypeBuilder) Visibility() Visibility { return b.visibility }

// Returns identifier of type under construction.
func (b *TypeBuilder) ID() SymbolID {
	id := NewTypeID(b.raw, b.tags...)
	return id.WithVisibility(b.visibility)
}

// Returns current violation: permanent one if builder is disabled, nil if builder is valid.
func (b *TypeBuilder) Violation() *diag.Violation {
	if b.permanent != nil {
		return b.permanent
	}
	return b.violation
}

func (b *TypeBuilder) Disabled() bool { return b.permanent != nil }

// Returns copy of symbol table under construction.
func (b *TypeBuilder) SymbolTable() *SymbolTable { return b.table.Clone() }

func (b *TypeBuilder) SetName(raw string) *TypeBuilder {
	b.mustNotBuilt()
	b.raw = raw
	return b.revalidate()
}

func (b *TypeBuilder) SetTagNames(tags ...string) *TypeBuilder {
	b.mustNotBuilt()
	b.tags = slices.Clone(tags)
	return b.revalidate()
}

// # Panics:
//   - if namespace is nil
func (b *TypeBuilder) SetNamespace(ns INamespace) *TypeBuilder {
	b.mustNotBuilt()
	if ns == nil {
		panic(ErrMissed("namespace of type «%v»", b.ID()))
	}
	b.namespace = ns
	return b.revalidate()
}

// Sets none value.
func (b *TypeBuilder) SetNone(none any) *TypeBuilder {
	return b.SetNoneGenerator(func() (any, error) { return none, nil })
}

// Sets none value generator. Generator is called on every validation and once on Build.
//
// # Panics:
//   - if generator is nil
func (b *TypeBuilder) SetNoneGenerator(gen func() (any, error)) *TypeBuilder {
	b.mustNotBuilt()
	if gen == nil {
		panic(ErrMissed("none generator of type «%v»", b.ID()))
	}
	b.noneGen = gen
	return b.revalidate()
}

func (b *TypeBuilder) SetMetadata(meta *Metadata) *TypeBuilder {
	b.mustNotBuilt()
	if meta == nil {
		panic(ErrMissed("metadata of type «%v»", b.ID()))
	}
	b.meta = meta
	return b.revalidate()
}

func (b *TypeBuilder) SetVisibility(vis Visibility) *TypeBuilder {
	b.mustNotBuilt()
	b.visibility = vis
	return b.revalidate()
}

// Adds symbol to type under construction.
//
// Returns duplicate symbol violation if symbol with the same identifier already added.
// Builder state is not changed by failed addition.
func (b *TypeBuilder) AddSymbol(s ISymbol) error {
	b.mustNotBuilt()
	if err := b.table.Add(s); err != nil {
		return err
	}
	b.revalidate()
	return nil
}

// Adds symbols to type under construction. Duplicate symbol disables builder.
func (b *TypeBuilder) With(symbols ...ISymbol) *TypeBuilder {
	for _, s := range symbols {
		if err := b.AddSymbol(s); err != nil {
			v, _ := diag.Find(err)
			return b.Disable(v)
		}
	}
	return b
}

// Sets symbol for identifier, overwriting existing one.
func (b *TypeBuilder) SetSymbol(id SymbolID, s ISymbol) *TypeBuilder {
	b.mustNotBuilt()
	b.table.Set(id, s)
	return b.revalidate()
}

// Removes symbol by identifier.
func (b *TypeBuilder) RemoveSymbol(id SymbolID) error {
	b.mustNotBuilt()
	if err := b.table.Remove(id); err != nil {
		return err
	}
	b.revalidate()
	return nil
}

// Copies name, tags, none value, metadata and symbols of type.
// Copied symbols overwrite existing ones. Parent link is not copied.
func (b *TypeBuilder) Copy(t IType) *TypeBuilder {
	b.mustNotBuilt()
	b.raw = t.RawName()
	b.tags = t.TagNames()
	none := t.None()
	b.noneGen = func() (any, error) { return none, nil }
	b.meta = t.Metadata().Renew()
	for id, s := range t.symbols().All() {
		if id != ParentID {
			b.table.Set(id, s)
		}
	}
	return b.revalidate()
}

// Returns type under construction. Returned type may be referenced by operations
// of type under construction. Type becomes usable after successful Build.
//
// Self should be called after type name and tags are set.
func (b *TypeBuilder) Self() IType {
	b.mustNotBuilt()
	if b.reserved == nil {
		b.reserved = &Type{}
		b.reserved.init(b.kind, b.raw, b.tags, b.class, nil, NewSymbolTable(), NewMetadata())
	}
	return b.reserved
}

// Disables builder permanently with specified violation.
// First violation is kept if builder disabled several times.
//
// # Panics:
//   - if violation is nil
func (b *TypeBuilder) Disable(v *diag.Violation) *TypeBuilder {
	if v == nil {
		panic(ErrMissed("violation to disable type builder «%v»", b.ID()))
	}
	if b.permanent == nil {
		b.permanent = v
		if logger.IsVerbose() {
			logger.Verbose("type builder", b.ID(), "disabled:", v)
		}
	}
	b.violation = b.permanent
	return b
}

// Builds type.
//
// Returns NoType and violation if builder is invalid or disabled, or if built type
// violates its own constraints or constraints of its kind, or if type can not be registered
// in namespace. Failed builder becomes disabled and keeps the first violation.
//
// Type is registered in root namespace by value class, in other namespace by identifier.
// Types nested in other types are not registered.
func (b *TypeBuilder) Build() (IType, error) {
	if b.built != nil {
		return b.built, nil
	}

	if v := b.Violation(); v != nil {
		return b.fail(v)
	}

	none, err := b.noneGen()
	if err != nil {
		return b.fail(violation(ErrInvalid("none value of type «%v»", b.ID()), b, none).WithCause(err))
	}

	t := b.reserved
	if t == nil {
		t = &Type{}
	}
	table := b.table.Clone()
	table.Set(ParentID, b.namespace)
	t.init(b.kind, b.raw, b.tags, b.class, none, table, b.meta.Renew())
	t.id = t.id.WithVisibility(b.visibility)

	if read := ReadID(t); !table.Contains(read) {
		table.Set(read, NewRead(t))
	}

	if err := t.CheckValue(outcome.OneOf(b.class, none)); err != nil {
		return b.fail(violation(ErrInvalid("none value «%v» of type «%v»", none, t), b, none).WithCause(err))
	}

	if err := b.kind.CheckValue(outcome.One(t)); err != nil {
		return b.fail(violation(ErrInvalid("type «%v» of kind «%v»", t, b.kind), b.kind, t).WithCause(err))
	}

	if err := register(b.namespace, t); err != nil {
		v, ok := diag.Find(err)
		if !ok {
			v = violation(err, b.namespace, t)
		}
		return b.fail(v)
	}

	t.Seal()
	b.built = t

	if logger.IsVerbose() {
		logger.Verbose("type", t, "of kind", b.kind, "built in", b.namespace)
	}
	return t, nil
}

func (b *TypeBuilder) fail(v *diag.Violation) (IType, error) {
	b.Disable(v)
	if b.failed == nil {
		b.failed = newNoType(b.namespace, b.class, b.permanent)
	}
	return b.failed, b.permanent
}

func (b *TypeBuilder) revalidate() *TypeBuilder {
	if b.permanent != nil {
		b.violation = b.permanent
		return b
	}
	v := TypeMustBeValid(b)
	switch {
	case v == nil:
		b.violation = nil
	case b.violation == nil:
		b.violation = v
	}
	return b
}

func (b *TypeBuilder) mustNotBuilt() {
	if b.built != nil {
		panic(ErrUnsupported("change type builder «%v» after build", b.ID()))
	}
}

func register(ns INamespace, t IType) error {
	switch n := ns.(type) {
	case IType:
		return nil
	case *RootNamespace:
		return n.Register(t)
	case interface{ Add(ISymbol) error }:
		if exists, ok := typeOfClassIn(ns, t.Class()); ok {
			return violation(ErrAlreadyExists("type «%v» for class «%v» in «%v»", exists, t.Class(), ns), ns, t)
		}
		return n.Add(t)
	}
	return ErrUnsupported("register type «%v» in namespace «%v»", t, ns)
}
