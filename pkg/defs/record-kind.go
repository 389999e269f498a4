/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package defs

import "strings"

// Record definition kind
type RecordKind uint8

//go:generate stringer -type=RecordKind -output=recordkind_string.go

const (
	RecordKind_null RecordKind = iota
	RecordKind_Table
	RecordKind_View
	RecordKind_Derived
	RecordKind_SubRecord
	RecordKind_count
)

func (k RecordKind) TrimString() string {
	const pref = "RecordKind_"
	return strings.TrimPrefix(k.String(), pref)
}

// Default value source kind
type DefaultKind uint8

//go:generate stringer -type=DefaultKind -output=defaultkind_string.go

const (
	DefaultKind_None DefaultKind = iota
	// Literal constant, e.g. "Y"
	DefaultKind_Constant
	// Meta-value, e.g. "%date"
	DefaultKind_Meta
	// Field of another record
	DefaultKind_Record
	DefaultKind_count
)

func (k DefaultKind) TrimString() string {
	const pref = "DefaultKind_"
	return strings.TrimPrefix(k.String(), pref)
}

// Component primary action, selects the search record
type PrimaryAction uint8

//go:generate stringer -type=PrimaryAction -output=primaryaction_string.go

const (
	PrimaryAction_null PrimaryAction = iota
	PrimaryAction_New
	PrimaryAction_Search
	PrimaryAction_count
)
