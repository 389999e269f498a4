/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package ptypes

import "strings"

// Value variant
type Kind uint8

//go:generate stringer -type=Kind -output=kind_string.go

const (
	// null - no-value kind. Returned when the requested kind does not exist
	Kind_null Kind = iota

	Kind_Boolean
	Kind_Integer
	Kind_Number
	Kind_String
	Kind_Char
	Kind_Date
	Kind_DateTime

	// Null value and "any" constraint
	Kind_Any

	Kind_Array

	// Object variants are shared by reference across execution boundaries
	Kind_Field
	Kind_Record
	Kind_Row
	Kind_Rowset

	Kind_count
)

// Returns is kind is primitive (passed by value)
func (k Kind) IsPrimitive() bool {
	return k >= Kind_Boolean && k <= Kind_DateTime
}

// Returns is kind is object (passed by reference)
func (k Kind) IsObject() bool {
	return k >= Kind_Field && k <= Kind_Rowset
}

// Renders a Kind in human-readable form, without "Kind_" prefix,
// suitable for debugging or error messages
func (k Kind) TrimString() string {
	const pref = "Kind_"
	return strings.TrimPrefix(k.String(), pref)
}
