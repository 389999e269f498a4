/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rowsets

import (
	"context"
	"strconv"

	"github.com/voedger/cbuffer/pkg/progs"
	"github.com/voedger/cbuffer/pkg/ptypes"
)

// Row of rowset. Owns records and child rowsets
type Row struct {
	rowset   *Rowset
	records  []*Record
	byName   map[string]*Record
	rowsets  []*Rowset
	selected *ptypes.Boolean
	readOnly bool
}

func newRow(rs *Rowset) (*Row, error) {
	row := &Row{
		rowset:   rs,
		byName:   make(map[string]*Record, len(rs.records)),
		selected: ptypes.NewBoolean(false),
	}
	for _, reg := range rs.records {
		rec := newRecord(row, reg.defn, reg.buf)
		row.records = append(row.records, rec)
		row.byName[reg.defn.Name] = rec
	}
	for _, sb := range rs.children {
		child, err := rs.rt.newScrollRowset(row, sb)
		if err != nil {
			return nil, err
		}
		row.rowsets = append(row.rowsets, child)
	}
	return row, nil
}

func (row *Row) Kind() ptypes.Kind { return ptypes.Kind_Row }

func (row *Row) IsReadOnly() bool { return row.readOnly }

// Marks row, its records and child rowsets read-only
func (row *Row) SetReadOnly() { MarkReadOnly(row) }

func (row *Row) IsSentinel() bool { return false }

func (row *Row) ParentRowset() *Rowset { return row.rowset }

// Returns 1-based index of row in parent rowset
func (row *Row) Index() int { return row.rowset.IndexOf(row) }

func (row *Row) ScrollLevel() int { return row.rowset.ScrollLevel() }

func (row *Row) Records() []*Record { return row.records }

func (row *Row) RecordCount() int { return len(row.records) }

func (row *Row) GetRecord(name string) (*Record, bool) {
	rec, ok := row.byName[name]
	return rec, ok
}

// Returns record by 1-based position
func (row *Row) GetRecordByIndex(idx int) (*Record, error) {
	if idx < 1 || idx > len(row.records) {
		return nil, ErrRecordIndexOutOfBounds(idx, len(row.records))
	}
	return row.records[idx-1], nil
}

func (row *Row) Rowsets() []*Rowset { return row.rowsets }

// Returns child rowset by primary record name
func (row *Row) GetRowset(primaryRec string) (*Rowset, bool) {
	for _, rs := range row.rowsets {
		if rs.DBRecordName() == primaryRec {
			return rs, true
		}
	}
	return nil, false
}

func (row *Row) Selected() *ptypes.Boolean { return row.selected }

// Fires event on records in order, then on child rowsets
func (row *Row) FireEvent(ctx context.Context, ev progs.Event, summary *EventSummary) error {
	for _, rec := range row.records {
		if err := rec.FireEvent(ctx, ev, summary); err != nil {
			return err
		}
	}
	for _, rs := range row.rowsets {
		if err := rs.FireEvent(ctx, ev, summary); err != nil {
			return err
		}
	}
	return nil
}

func (row *Row) RunDefaults(ctx context.Context, summary *DefaultsSummary) error {
	for _, rec := range row.records {
		if err := rec.RunDefaults(ctx, summary); err != nil {
			return err
		}
	}
	for _, rs := range row.rowsets {
		if err := rs.RunDefaults(ctx, summary); err != nil {
			return err
		}
	}
	return nil
}

func (row *Row) Keylist(field string) Keylist {
	kl := Keylist{}
	row.keylist(field, nil, &kl)
	return kl
}

// Harvests fields with name from own records except the requester,
// then from ancestor rows. Root row looks into the search record
func (row *Row) keylist(field string, except *Field, kl *Keylist) {
	for _, rec := range row.records {
		if f, ok := rec.byName[field]; ok && f != except {
			*kl = append(*kl, f)
		}
	}
	if parent := row.rowset.parent; parent != nil {
		parent.keylist(field, nil, kl)
		return
	}
	if sr := row.rowset.rt.searchRecord; sr != nil && sr.row != row {
		if f, ok := sr.byName[field]; ok && f != except {
			*kl = append(*kl, f)
		}
	}
}

func (row *Row) ResolveRecord(name string) (*Record, bool) {
	if rec, ok := row.byName[name]; ok {
		return rec, true
	}
	if parent := row.rowset.parent; parent != nil {
		return parent.ResolveRecord(name)
	}
	if sr := row.rowset.rt.searchRecord; sr != nil && sr.defn.Name == name {
		return sr, true
	}
	return nil, false
}

func (row *Row) ResolveField(rec, field string) (*Field, bool) {
	r, ok := row.ResolveRecord(rec)
	if !ok {
		return nil, false
	}
	return r.Field(field)
}

func (row *Row) ResolveScroll(primaryRec string) (*Rowset, bool) {
	if rs, ok := row.GetRowset(primaryRec); ok {
		return rs, true
	}
	return row.rowset.ResolveScroll(primaryRec)
}

func (row *Row) String() string {
	return "row " + strconv.Itoa(row.Index()) + " of " + row.rowset.String()
}
