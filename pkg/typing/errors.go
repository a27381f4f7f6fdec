/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package typing

import (
	"errors"
	"fmt"

	"github.com/voedger/typing/pkg/diag"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrMissedError = errors.New("missed")

func ErrMissed(msg string, args ...any) error {
	return EnrichError(ErrMissedError, msg, args...)
}

var ErrInvalidError = errors.New("not valid")

func ErrInvalid(msg string, args ...any) error {
	return EnrichError(ErrInvalidError, msg, args...)
}

var ErrOutOfBoundsError = errors.New("out of bounds")

func ErrOutOfBounds(msg string, args ...any) error {
	return EnrichError(ErrOutOfBoundsError, msg, args...)
}

var ErrAlreadyExistsError = errors.New("already exists")

func ErrAlreadyExists(msg string, args ...any) error {
	return EnrichError(ErrAlreadyExistsError, msg, args...)
}

func ErrDuplicateSymbol(id SymbolID) error {
	return ErrAlreadyExists("duplicate symbol «%v»", id)
}

var ErrNotFoundError = errors.New("not found")

func ErrNotFound(msg string, args ...any) error {
	return EnrichError(ErrNotFoundError, msg, args...)
}

func ErrSymbolNotFound(id SymbolID) error {
	return ErrNotFound("symbol «%v»", id)
}

var ErrIncompatibleError = errors.New("incompatible")

func ErrIncompatible(msg string, args ...any) error {
	return EnrichError(ErrIncompatibleError, msg, args...)
}

var ErrUnsupportedError = errors.ErrUnsupported

func ErrUnsupported(msg string, args ...any) error {
	return EnrichError(ErrUnsupportedError, msg, args...)
}

var ErrConstraintViolatedError = errors.New("constraint violated")

func ErrConstraintViolated(msg string, args ...any) error {
	return EnrichError(ErrConstraintViolatedError, msg, args...)
}

var ErrNotRegisteredError = errors.New("not registered")

func ErrNotRegistered(msg string, args ...any) error {
	return EnrichError(ErrNotRegisteredError, msg, args...)
}

var ErrNoTypeCasterError = errors.New("no type caster registered")

func ErrNoTypeCaster(from, to IType) error {
	return EnrichError(ErrNoTypeCasterError, "from «%v» to «%v»", from, to)
}

var ErrNoSubTypeError = errors.New("no subtype possible")

func ErrNoSubType(msg string, args ...any) error {
	return EnrichError(ErrNoSubTypeError, msg, args...)
}

var ErrBodyFaultError = errors.New("operation body fault")

func ErrBodyFault(op IOperation, fault any) error {
	return EnrichError(ErrBodyFaultError, "«%v»: %v", op, fault)
}

var ErrDisabledError = errors.New("disabled")

func ErrDisabled(msg string, args ...any) error {
	return EnrichError(ErrDisabledError, msg, args...)
}

func violation(contract error, plaintiff, inspected any) *diag.Violation {
	return diag.NewViolation(contract, plaintiff, inspected)
}

// Error of operation evaluation, labeled by index of failed input.
//
// Index equals BodyFaultIndex if operation body itself faulted.
type InputError struct {
	Operation SymbolID
	Index     int
	Err       error
}

func (e *InputError) Error() string {
	if e.Index == BodyFaultIndex {
		return fmt.Sprintf("operation «%v» body: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("operation «%v» input #%d: %v", e.Operation, e.Index, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// Returns index of failed input from error chain.
func InputIndex(err error) (int, bool) {
	var e *InputError
	if errors.As(err, &e) {
		return e.Index, true
	}
	return 0, false
}
