/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing

import (
	"iter"
	"reflect"
	"sync"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/typing/pkg/diag"
)

// Root namespace is a registry of types by their value classes.
//
// Root namespace is an explicit object: each root is isolated registry.
// Registry is safe for concurrent lookups.
//
// # Implements:
//   - INamespace
type RootNamespace struct {
	Namespace
	mx      sync.RWMutex
	classes map[reflect.Type]IType
	sink    diag.ISink
}

// Creates new root namespace. If sink is nil, violations are written to verbose log.
func NewRootNamespace(name string, sink diag.ISink) *RootNamespace {
	if sink == nil {
		sink = diag.LogSink()
	}
	r := &RootNamespace{
		classes: make(map[reflect.Type]IType),
		sink:    sink,
	}
	r.Namespace.init(NewSymbolID(name, SymbolKind_Namespace, Visibility_Public), NewSymbolTable(), nil)
	return r
}

func (r *RootNamespace) Sink() diag.ISink { return r.sink }

// Returns registered type for value class.
// If no type registered, reports violation to sink and returns NoType.
func (r *RootNamespace) TypeOf(class reflect.Type) IType {
	r.mx.RLock()
	t, ok := r.classes[class]
	r.mx.RUnlock()
	if ok {
		return t
	}
	return newNoType(r, class, violation(ErrNotRegistered("type for class «%v» in «%v»", class, r), r, class))
}

// Registers type. Only one type may be registered for each value class.
//
// Returns duplicate symbol violation if type for class or type with the same identifier already registered.
func (r *RootNamespace) Register(t IType) error {
	r.mx.Lock()
	defer r.mx.Unlock()

	if exists, ok := r.classes[t.Class()]; ok {
		return violation(ErrAlreadyExists("type «%v» for class «%v» in «%v»", exists, t.Class(), r), r, t)
	}
	if err := r.Namespace.Add(t); err != nil {
		return err
	}
	r.classes[t.Class()] = t

	if logger.IsVerbose() {
		logger.Verbose("type", t, "registered in", r)
	}
	return nil
}

// Adds symbol to root. Types are registered by value class.
func (r *RootNamespace) Add(s ISymbol) error {
	if t, ok := s.(IType); ok && s.ID().Kind() == SymbolKind_Type {
		return r.Register(t)
	}
	r.mx.Lock()
	defer r.mx.Unlock()
	return r.Namespace.Add(s)
}

// Returns is type for value class registered.
func (r *RootNamespace) Registered(class reflect.Type) bool {
	r.mx.RLock()
	defer r.mx.RUnlock()
	_, ok := r.classes[class]
	return ok
}

// Returns registered types in registration order.
func (r *RootNamespace) Types() iter.Seq[IType] {
	return TypesOf(r)
}

func (r *RootNamespace) Rename(name string) ISymbol {
	r.mx.RLock()
	defer r.mx.RUnlock()

	c := NewRootNamespace(name, r.sink)
	c.table = r.table.Clone()
	c.meta = r.meta.Renew()
	for k, v := range r.classes {
		c.classes[k] = v
	}
	return c
}
