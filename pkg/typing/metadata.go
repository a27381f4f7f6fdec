/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing

import (
	"maps"
	"reflect"
)

// Metadata is a set of metadata items keyed by their Go types.
type Metadata struct {
	items map[reflect.Type]any
}

func NewMetadata() *Metadata {
	return &Metadata{items: make(map[reflect.Type]any)}
}

// Sets metadatum. Metadatum of the same Go type is replaced.
//
// # Panics:
//   - if metadatum is nil
func (m *Metadata) Set(v any) *Metadata {
	if v == nil {
		panic(ErrMissed("metadatum"))
	}
	m.items[reflect.TypeOf(v)] = v
	return m
}

func (m *Metadata) Get(t reflect.Type) (any, bool) {
	v, ok := m.items[t]
	return v, ok
}

func (m *Metadata) Has(t reflect.Type) bool {
	_, ok := m.items[t]
	return ok
}

func (m *Metadata) Len() int { return len(m.items) }

// Returns copy of metadata.
func (m *Metadata) Renew() *Metadata {
	return &Metadata{items: maps.Clone(m.items)}
}

// Returns metadatum of type T from namespace or its parents.
func MetadatumOf[T any](ns INamespace) (T, bool) {
	var zero T
	v, ok := ns.FindMetadatum(reflect.TypeFor[T]())
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
