/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rowsets

import "github.com/voedger/cbuffer/pkg/ptypes"

// Marks value and all its descendants read-only, descendants first.
//
// Rowset cascades to rows, row to records and child rowsets, record to fields
// and field to its value. Idempotent
func MarkReadOnly(v ptypes.IValue) {
	switch n := v.(type) {
	case *Rowset:
		for _, row := range n.rows {
			MarkReadOnly(row)
		}
		n.readOnly = true
	case *Row:
		for _, rec := range n.records {
			MarkReadOnly(rec)
		}
		for _, rs := range n.rowsets {
			MarkReadOnly(rs)
		}
		n.readOnly = true
	case *Record:
		for _, f := range n.fieldList {
			MarkReadOnly(f)
		}
		n.readOnly = true
	case *Field:
		n.value.SetReadOnly()
		n.readOnly = true
	default:
		v.SetReadOnly()
	}
}
