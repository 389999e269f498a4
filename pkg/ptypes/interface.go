/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package ptypes

// Any runtime value: primitive, array, null or object
type IValue interface {
	Kind() Kind

	IsReadOnly() bool

	// Marks value as read-only. Idempotent
	SetReadOnly()

	// Returns is value is cached canonical uninitialized instance
	IsSentinel() bool
}

// Primitive value. Passed by value across execution boundaries
type IPrimitive interface {
	IValue

	// Returns is value is blank (default for variant)
	IsBlank() bool

	// Restores blank value, bypassing read-only lock
	SetBlank() error

	// Returns value rendered as string, as used by trace emissions
	ReadAsString() string

	// Copies value from other primitive of the same variant.
	//
	// Returns ErrTypeMismatch if variants differ or value is not writeable
	CopyValueFrom(IPrimitive) error

	// Returns new writeable instance with the same value
	Clone() IPrimitive

	// Compares value with other primitive.
	// Returns negative, zero or positive number.
	//
	// Returns ErrTypeMismatch if values are incomparable
	Compare(IPrimitive) (int, error)

	// Returns is value changed by any write since allocation or last ResetUpdated
	IsUpdated() bool
	ResetUpdated()
}
