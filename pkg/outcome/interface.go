/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package outcome

import (
	"context"
	"reflect"
)

// Kind of outcome.
type Kind uint8

//go:generate stringer -type=Kind -output=kind_string.go

const (
	Kind_null Kind = iota

	// Exactly one present value
	Kind_One

	// Zero or more present values
	Kind_Many

	// Absent value, may carry a diagnostic
	Kind_No

	// Failure, always carries an error
	Kind_Error

	// Not yet resolved value
	Kind_Pending

	Kind_count
)

// Result of a computation: present, absent, erroneous or not yet resolved values of some class.
//
// Outcomes are immutable. Pending outcome resolves once, result is memoized.
type IOutcome interface {
	Kind() Kind

	// Returns Go type of values.
	Class() reflect.Type

	// Returns is outcome has at least one present value.
	// Pending outcome has no values until resolved.
	HasValue() bool

	// Returns copy of present values.
	Values() []any

	// Returns first present value.
	First() (any, bool)

	// Returns count of present values.
	Len() int

	// Returns error for failure outcome and diagnostic for absent one, nil otherwise.
	Err() error

	// Returns is outcome still pending.
	Blocking() bool

	// Resolves pending outcome. Returns itself for resolved outcomes.
	// If context is done before resolution, returns failure with context error.
	Await(ctx context.Context) IOutcome

	String() string
}
