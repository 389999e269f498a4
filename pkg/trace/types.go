/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package trace

import (
	"fmt"
	"strings"
)

// Source of defaulted value
type SourceKind uint8

//go:generate stringer -type=SourceKind -output=sourcekind_string.go

const (
	SourceKind_null SourceKind = iota
	SourceKind_Constant
	SourceKind_Record
	SourceKind_Meta
	SourceKind_count
)

func (k SourceKind) TrimString() string {
	const pref = "SourceKind_"
	return strings.TrimPrefix(k.String(), pref)
}

// Field was defaulted
type FieldDefaultEmission struct {
	Record string
	Field  string
	Value  string
	Source SourceKind
	// Meta-value the default was resolved from, if Source is meta
	MetaValue string
}

func (e FieldDefaultEmission) String() string {
	s := fmt.Sprintf("Default: %s.%s = «%s» (%s)", e.Record, e.Field, e.Value, e.Source.TrimString())
	if e.MetaValue != "" {
		s += " from " + e.MetaValue
	}
	return s
}

// Program execution started
type PCBeginEmission struct {
	Program string
	Level   int
	Row     int
}

func (e PCBeginEmission) String() string {
	return fmt.Sprintf(">>>>> Begin %s level %d row %d", e.Program, e.Level, e.Row)
}
