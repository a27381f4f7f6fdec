/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing

import (
	"strconv"
	"strings"
)

//go:generate stringer -type=ConstraintKind -output=constraint-kind_string.go

// Kind of value constraint.
type ConstraintKind uint8

const (
	// null - no-value kind. Returned when the requested kind does not exist
	ConstraintKind_null ConstraintKind = iota

	ConstraintKind_MinLen
	ConstraintKind_MaxLen
	ConstraintKind_Pattern

	ConstraintKind_MinIncl
	ConstraintKind_MinExcl
	ConstraintKind_MaxIncl
	ConstraintKind_MaxExcl

	ConstraintKind_Enum

	// Arbitrary predicate
	ConstraintKind_Func

	ConstraintKind_count
)

func (k ConstraintKind) MarshalText() ([]byte, error) {
	var s string
	if k < ConstraintKind_count {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders a ConstraintKind in human-readable form, without "ConstraintKind_" prefix,
// suitable for debugging or error messages
func (k ConstraintKind) TrimString() string {
	const pref = "ConstraintKind_"
	return strings.TrimPrefix(k.String(), pref)
}
