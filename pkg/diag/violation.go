/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package diag

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Violation is a record of a broken contract.
//
// Violation is an error. It unwraps to the contract error and to the cause, so
// errors.Is can match both the contract sentinel and the causing error.
type Violation struct {
	id        uuid.UUID
	contract  error
	plaintiff any
	inspected any
	cause     error
}

// Creates new violation of contract, reported by plaintiff about inspected data.
//
// # Panics:
//   - if contract is nil
func NewViolation(contract error, plaintiff, inspected any) *Violation {
	if contract == nil {
		panic(errors.New("violation contract is missed"))
	}
	return &Violation{
		id:        uuid.New(),
		contract:  contract,
		plaintiff: plaintiff,
		inspected: inspected,
	}
}

// Returns unique identifier of violation.
func (v *Violation) ID() uuid.UUID { return v.id }

// Returns violated contract.
func (v *Violation) Contract() error { return v.contract }

// Returns object which detected the violation.
func (v *Violation) Plaintiff() any { return v.plaintiff }

// Returns data which violates the contract.
func (v *Violation) Inspected() any { return v.inspected }

// Returns causing error or nil.
func (v *Violation) Cause() error { return v.cause }

// Returns copy of violation with specified cause attached.
// Copy has the same ID as the original.
func (v *Violation) WithCause(err error) *Violation {
	c := *v
	c.cause = err
	return &c
}

// Renders violation as «contract: cause»
func (v *Violation) Error() string {
	if v.cause == nil {
		return v.contract.Error()
	}
	return fmt.Sprintf("%v: %v", v.contract, v.cause)
}

func (v *Violation) Unwrap() []error {
	if v.cause == nil {
		return []error{v.contract}
	}
	return []error{v.contract, v.cause}
}

// Returns the outermost violation from the err chain.
func Find(err error) (*Violation, bool) {
	var v *Violation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
