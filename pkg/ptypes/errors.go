/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ptypes

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

// Fatal, aborts component load
var ErrStructuralIntegrityError = errors.New("structural integrity violation")

func ErrStructuralIntegrity(msg string, args ...any) error {
	return EnrichError(ErrStructuralIntegrityError, msg, args...)
}

// Fatal at the call site
var ErrTypeMismatchError = errors.New("type mismatch")

func ErrTypeMismatch(msg string, args ...any) error {
	return EnrichError(ErrTypeMismatchError, msg, args...)
}

func ErrReadOnlyWrite(v any) error {
	return ErrTypeMismatch("write to read-only value «%v»", v)
}

func ErrSentinelWrite(v any) error {
	return ErrTypeMismatch("write to sentinel value «%v»", v)
}

// Gap against the platform semantics. Matches errors.ErrUnsupported
var ErrUnsupportedError = errors.ErrUnsupported

func ErrUnsupported(msg string, args ...any) error {
	return EnrichError(ErrUnsupportedError, msg, args...)
}

// Not an error: lookup key is not yet available in the buffer context
var ErrDeferredResolutionError = errors.New("deferred resolution")

func ErrDeferredResolution(msg string, args ...any) error {
	return EnrichError(ErrDeferredResolutionError, msg, args...)
}

var ErrNotFoundError = errors.New("not found")

func ErrNotFound(msg string, args ...any) error {
	return EnrichError(ErrNotFoundError, msg, args...)
}

var ErrOutOfBoundsError = errors.New("out of bounds")

func ErrOutOfBounds(msg string, args ...any) error {
	return EnrichError(ErrOutOfBoundsError, msg, args...)
}

// Returns is error fatal for the unit of work.
//
// Deferred resolution is the only non-fatal error
func IsFatal(err error) bool {
	return err != nil && !errors.Is(err, ErrDeferredResolutionError)
}
