/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package outcome

import (
	"fmt"
)

// Returns single value of outcome as T.
//
// Returns outcome error if outcome has no value and carries one,
// ErrNoValue if outcome is empty.
func Single[T any](o IOutcome) (T, error) {
	var zero T
	v, ok := o.First()
	if !ok {
		if err := o.Err(); err != nil {
			return zero, err
		}
		return zero, fmt.Errorf("%w: %v", ErrNoValue, o)
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("value «%v» is %T, not %T", v, v, zero)
	}
	return t, nil
}

// Returns is outcome failure.
func Failed(o IOutcome) bool { return o.Kind() == Kind_Error }
