/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing

import (
	"fmt"
	"strings"
)

// Identifier of symbol.
//
// Identifiers are comparable and are used as map keys. Two identifiers are equal
// if their names, kinds, visibilities and signatures are equal.
type SymbolID struct {
	name       string
	kind       SymbolKind
	visibility Visibility
	signature  string
}

// Null identifier
var NullSymbolID = SymbolID{}

// Identifier of namespace parent. Stored inside namespace symbol table.
var ParentID = NewSymbolID("parent", SymbolKind_Namespace, Visibility_Private)

// Creates new identifier.
//
// # Panics:
//   - if name is empty
func NewSymbolID(name string, kind SymbolKind, vis Visibility) SymbolID {
	if name == "" {
		panic(ErrMissed("symbol name"))
	}
	return SymbolID{name: name, kind: kind, visibility: vis}
}

// Creates new type identifier. Name is «raw» if no tags specified, «raw[tag1, tag2]» otherwise.
func NewTypeID(raw string, tags ...string) SymbolID {
	return NewSymbolID(TypeName(raw, tags...), SymbolKind_Type, Visibility_Public)
}

// Returns type name from raw name and tag names.
func TypeName(raw string, tags ...string) string {
	if len(tags) == 0 {
		return raw
	}
	return raw + "[" + strings.Join(tags, ", ") + "]"
}

// Creates new operation identifier. Signature is rendered from input and output type names.
func NewOperationID(name string, vis Visibility, inputs []IType, output IType, variadic bool) SymbolID {
	id := NewSymbolID(name, SymbolKind_Operation, vis)
	id.signature = Signature(inputs, output, variadic)
	return id
}

// Renders operation signature, like «(int, int) -> int» or «(string...) -> string».
func Signature(inputs []IType, output IType, variadic bool) string {
	s := strings.Builder{}
	s.WriteString("(")
	for i, in := range inputs {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(in.ID().Name())
	}
	if variadic {
		s.WriteString("...")
	}
	s.WriteString(") -> ")
	s.WriteString(output.ID().Name())
	return s.String()
}

const CastOperationName = "cast"

// Returns identifier of cast operation from one type to other.
func CastID(from, to IType) SymbolID {
	return NewOperationID(CastOperationName, Visibility_Public, []IType{from}, to, false)
}

const ReadOperationName = "read"

// Returns identifier of default read operation of type.
func ReadID(t IType) SymbolID {
	return NewOperationID(ReadOperationName, Visibility_Public, []IType{t}, t, false)
}

func (id SymbolID) Name() string           { return id.name }
func (id SymbolID) Kind() SymbolKind       { return id.kind }
func (id SymbolID) Visibility() Visibility { return id.visibility }
func (id SymbolID) Signature() string      { return id.signature }
func (id SymbolID) IsNull() bool           { return id == NullSymbolID }
func (id SymbolID) IsPrivate() bool        { return id.visibility == Visibility_Private }

// Returns copy of identifier with new name.
func (id SymbolID) WithName(name string) SymbolID {
	r := NewSymbolID(name, id.kind, id.visibility)
	r.signature = id.signature
	return r
}

// Returns copy of identifier with new visibility.
func (id SymbolID) WithVisibility(vis Visibility) SymbolID {
	id.visibility = vis
	return id
}

func (id SymbolID) String() string {
	if id.signature == "" {
		return id.name
	}
	return id.name + " " + id.signature
}

// Renders identifier with kind and visibility, like «private Operation add (int, int) -> int».
func (id SymbolID) GoString() string {
	return fmt.Sprintf("%s %s %v", strings.ToLower(id.visibility.TrimString()), id.kind.TrimString(), id)
}
