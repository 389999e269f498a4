/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rowsets

import (
	"context"

	"github.com/voedger/cbuffer/pkg/cbuffer"
	"github.com/voedger/cbuffer/pkg/defs"
	"github.com/voedger/cbuffer/pkg/progs"
	"github.com/voedger/cbuffer/pkg/ptypes"
)

// Record of row. Owns fields, one per expanded record field
type Record struct {
	row  *Row
	defn *defs.Record
	// nil for standalone record
	buf       *cbuffer.RecordBuffer
	fieldList []*Field
	byName    map[string]*Field
	readOnly  bool
}

func newRecord(row *Row, defn *defs.Record, buf *cbuffer.RecordBuffer) *Record {
	fields := defn.ExpandedFields()
	rec := &Record{
		row:    row,
		defn:   defn,
		buf:    buf,
		byName: make(map[string]*Field, len(fields)),
	}
	for _, fd := range fields {
		var fb *cbuffer.RecordFieldBuffer
		if buf != nil {
			fb, _ = buf.FieldBuffer(fd.Name)
		}
		f := newField(rec, fd, fb)
		rec.fieldList = append(rec.fieldList, f)
		rec.byName[fd.Name] = f
	}
	return rec
}

func (rec *Record) Kind() ptypes.Kind { return ptypes.Kind_Record }

func (rec *Record) IsReadOnly() bool { return rec.readOnly }

// Marks record and its fields read-only
func (rec *Record) SetReadOnly() { MarkReadOnly(rec) }

func (rec *Record) IsSentinel() bool { return false }

func (rec *Record) Name() string { return rec.defn.Name }

func (rec *Record) Defn() *defs.Record { return rec.defn }

// Returns record buffer, nil for standalone record
func (rec *Record) RecordBuffer() *cbuffer.RecordBuffer { return rec.buf }

func (rec *Record) IsBufferBound() bool { return rec.buf != nil }

func (rec *Record) Row() *Row { return rec.row }

func (rec *Record) ScrollLevel() int { return rec.row.ScrollLevel() }

// Returns fields in expanded declaration order
func (rec *Record) Fields() []*Field { return rec.fieldList }

func (rec *Record) Field(name string) (*Field, bool) {
	f, ok := rec.byName[name]
	return f, ok
}

// Returns field by 1-based position
func (rec *Record) FieldByIndex(idx int) (*Field, error) {
	if idx < 1 || idx > len(rec.fieldList) {
		return nil, ErrFieldIndexOutOfBounds(idx, len(rec.fieldList))
	}
	return rec.fieldList[idx-1], nil
}

func (rec *Record) FireEvent(ctx context.Context, ev progs.Event, summary *EventSummary) error {
	for _, f := range rec.fieldList {
		if err := f.FireEvent(ctx, ev, summary); err != nil {
			return err
		}
	}
	return nil
}

func (rec *Record) RunDefaults(ctx context.Context, summary *DefaultsSummary) error {
	for _, f := range rec.fieldList {
		if err := f.RunDefaults(ctx, summary); err != nil {
			return err
		}
	}
	return nil
}

func (rec *Record) Keylist(field string) Keylist {
	kl := Keylist{}
	rec.row.keylist(field, nil, &kl)
	return kl
}

func (rec *Record) ResolveRecord(name string) (*Record, bool) {
	if rec.defn.Name == name {
		return rec, true
	}
	return rec.row.ResolveRecord(name)
}

func (rec *Record) ResolveField(recName, field string) (*Field, bool) {
	r, ok := rec.ResolveRecord(recName)
	if !ok {
		return nil, false
	}
	return r.Field(field)
}

func (rec *Record) ResolveScroll(primaryRec string) (*Rowset, bool) {
	return rec.row.ResolveScroll(primaryRec)
}

func (rec *Record) String() string { return "record «" + rec.defn.Name + "»" }
