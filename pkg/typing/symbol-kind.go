/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing

import (
	"strconv"
	"strings"
)

//go:generate stringer -type=SymbolKind,Visibility -output=symbol-kind_string.go

// Kind of symbol.
type SymbolKind uint8

const (
	// null - no-value kind. Returned when the requested kind does not exist
	SymbolKind_null SymbolKind = iota

	SymbolKind_Namespace
	SymbolKind_Type
	SymbolKind_Kind
	SymbolKind_Tag
	SymbolKind_Operation
	SymbolKind_Term
	SymbolKind_Constraint

	SymbolKind_count
)

func (k SymbolKind) MarshalText() ([]byte, error) {
	var s string
	if k < SymbolKind_count {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders a SymbolKind in human-readable form, without "SymbolKind_" prefix,
// suitable for debugging or error messages
func (k SymbolKind) TrimString() string {
	const pref = "SymbolKind_"
	return strings.TrimPrefix(k.String(), pref)
}

// Symbol visibility.
type Visibility uint8

const (
	Visibility_Public Visibility = iota
	Visibility_Private

	Visibility_count
)

func (v Visibility) TrimString() string {
	const pref = "Visibility_"
	return strings.TrimPrefix(v.String(), pref)
}
