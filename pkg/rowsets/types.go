/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rowsets

import (
	"fmt"
	"strings"

	"github.com/voedger/cbuffer/pkg/ptypes"
)

// Result of default processing pass
type DefaultsSummary struct {
	// Fields changed by constant or non-constant defaults
	FieldsChanged int
	// Fields with default source left blank
	BlanksSeen int
	// FieldDefault programs executed
	Events EventSummary
}

func (s *DefaultsSummary) fieldWasChanged() { s.FieldsChanged++ }

func (s *DefaultsSummary) blankFieldWasSeen() { s.BlanksSeen++ }

func (s DefaultsSummary) String() string {
	return fmt.Sprintf("changed: %d, blank: %d, programs: %d", s.FieldsChanged, s.BlanksSeen, s.Events.ProgramsExecuted)
}

// Result of event firing
type EventSummary struct {
	ProgramsExecuted int
}

type SortOrder uint8

const (
	SortOrder_Ascending SortOrder = iota
	SortOrder_Descending
)

// Parses "A" or "D"
func SortOrderOf(s string) (SortOrder, bool) {
	switch strings.ToUpper(s) {
	case SortOrderLiteral_Ascending:
		return SortOrder_Ascending, true
	case SortOrderLiteral_Descending:
		return SortOrder_Descending, true
	}
	return SortOrder_Ascending, false
}

// Field of rowset primary record and order to sort rows by
type SortKey struct {
	Field string
	Order SortOrder
}

func Asc(field string) SortKey { return SortKey{Field: field, Order: SortOrder_Ascending} }

func Desc(field string) SortKey { return SortKey{Field: field, Order: SortOrder_Descending} }

type DropDownItem struct {
	Code  string
	Descr string
}

// Key field values harvested from buffer context, nearest first
type Keylist []*Field

func (kl Keylist) HasNonBlankValue() bool {
	_, ok := kl.FirstNonBlank()
	return ok
}

func (kl Keylist) IsFirstValueNonBlank() bool {
	return len(kl) > 0 && !kl[0].value.IsBlank()
}

// Returns nearest non-blank value
func (kl Keylist) FirstNonBlank() (ptypes.IPrimitive, bool) {
	for _, f := range kl {
		if !f.value.IsBlank() {
			return f.value, true
		}
	}
	return nil, false
}

func (kl Keylist) String() string {
	s := make([]string, 0, len(kl))
	for _, f := range kl {
		s = append(s, fmt.Sprintf("%s=«%s»", f.defn, f.value.ReadAsString()))
	}
	return "[" + strings.Join(s, ", ") + "]"
}
