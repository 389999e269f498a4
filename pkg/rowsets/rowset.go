/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rowsets

import (
	"context"
	"fmt"

	"github.com/voedger/cbuffer/pkg/cbuffer"
	"github.com/voedger/cbuffer/pkg/defs"
	"github.com/voedger/cbuffer/pkg/goutils/logger"
	"github.com/voedger/cbuffer/pkg/progs"
	"github.com/voedger/cbuffer/pkg/ptypes"
)

// Record registered in rowset, allocated in every row
type registeredRecord struct {
	defn *defs.Record
	buf  *cbuffer.RecordBuffer
}

// Ordered list of rows. Always contains at least one row
type Rowset struct {
	rt      *Runtime
	parent  *Row
	primary *defs.Record
	// nil for standalone rowset
	scroll *cbuffer.ScrollBuffer

	records  []registeredRecord
	children []*cbuffer.ScrollBuffer
	rows     []*Row
	readOnly bool
}

func newRowset(rt *Runtime, parent *Row, primary *defs.Record, sb *cbuffer.ScrollBuffer) (*Rowset, error) {
	rs := &Rowset{rt: rt, parent: parent, primary: primary, scroll: sb}
	if primary != nil {
		rs.registerRecord(primary)
	}
	if sb != nil {
		for _, rb := range sb.RecordBuffers() {
			rs.registerRecord(rb.Defn())
		}
		for _, child := range sb.ChildScrolls() {
			if err := rs.registerChildScroll(child); err != nil {
				return nil, err
			}
		}
	}
	row, err := newRow(rs)
	if err != nil {
		return nil, err
	}
	rs.rows = []*Row{row}
	return rs, nil
}

// Registers record once. Record buffer of scroll is bound if exists
func (rs *Rowset) registerRecord(defn *defs.Record) {
	for _, r := range rs.records {
		if r.defn.Name == defn.Name {
			return
		}
	}
	reg := registeredRecord{defn: defn}
	if rs.scroll != nil {
		if rb, ok := rs.scroll.RecordBuffer(defn.Name); ok {
			reg.buf = rb
		}
	}
	rs.records = append(rs.records, reg)
}

func (rs *Rowset) registerChildScroll(sb *cbuffer.ScrollBuffer) error {
	for _, c := range rs.children {
		if c.PrimaryRecName() == sb.PrimaryRecName() {
			return ErrDuplicateChildScroll(sb.PrimaryRecName())
		}
	}
	rs.children = append(rs.children, sb)
	return nil
}

func (rs *Rowset) Kind() ptypes.Kind { return ptypes.Kind_Rowset }

func (rs *Rowset) IsReadOnly() bool { return rs.readOnly }

// Marks rowset and all descendants read-only
func (rs *Rowset) SetReadOnly() { MarkReadOnly(rs) }

func (rs *Rowset) IsSentinel() bool { return false }

// Returns primary record definition, nil for root rowset of component buffer
func (rs *Rowset) PrimaryRecord() *defs.Record { return rs.primary }

// Returns originating scroll buffer, nil for standalone rowset
func (rs *Rowset) ScrollBuffer() *cbuffer.ScrollBuffer { return rs.scroll }

func (rs *Rowset) IsBufferBound() bool { return rs.scroll != nil }

// Returns parent row, nil for root
func (rs *Rowset) ParentRow() *Row { return rs.parent }

func (rs *Rowset) Rows() []*Row { return rs.rows }

func (rs *Rowset) ActiveRowCount() int { return len(rs.rows) }

// Returns name of primary record or empty string for root rowset
func (rs *Rowset) DBRecordName() string {
	if rs.primary == nil {
		return ""
	}
	return rs.primary.Name
}

// Returns row by 1-based index
func (rs *Rowset) GetRow(idx int) (*Row, error) {
	if idx < 1 || idx > len(rs.rows) {
		return nil, ErrRowIndexOutOfBounds(idx, len(rs.rows))
	}
	return rs.rows[idx-1], nil
}

// Returns 1-based index of row, 0 if row is not in rowset
func (rs *Rowset) IndexOf(row *Row) int {
	for i, r := range rs.rows {
		if r == row {
			return i + 1
		}
	}
	return 0
}

// Returns scroll level: level of scroll buffer for buffer-bound rowset,
// depth from graph root otherwise
func (rs *Rowset) ScrollLevel() int {
	if rs.scroll != nil {
		return rs.scroll.Level()
	}
	if rs.parent == nil {
		return 0
	}
	return rs.parent.rowset.ScrollLevel() + 1
}

// Allocates new row. Row of read-only rowset is read-only
func (rs *Rowset) allocRow() (*Row, error) {
	row, err := newRow(rs)
	if err != nil {
		return nil, err
	}
	if rs.readOnly {
		MarkReadOnly(row)
	}
	return row, nil
}

// Appends new row with all registered records and child rowsets
func (rs *Rowset) AppendRow() (*Row, error) {
	row, err := rs.allocRow()
	if err != nil {
		return nil, err
	}
	rs.rows = append(rs.rows, row)
	return row, nil
}

// Removes all rows and allocates one empty row
func (rs *Rowset) Flush() error {
	row, err := rs.allocRow()
	if err != nil {
		return err
	}
	rs.rows = []*Row{row}
	return nil
}

// Flushes rowset and fills it with primary record rows selected by where clause.
//
// Returns number of rows read. If nothing is read one empty row remains
func (rs *Rowset) Fill(ctx context.Context, where string, binds ...string) (int, error) {
	if rs.primary == nil {
		return 0, ErrNoPrimaryRecord("Fill")
	}
	if err := rs.Flush(); err != nil {
		return 0, err
	}
	stmt, err := rs.rt.Library.FillQuery(rs.primary, where, binds...)
	if err != nil {
		return 0, err
	}
	res, err := rs.rt.Executor.Query(ctx, stmt)
	if err != nil {
		return 0, err
	}
	fields := rs.primary.ExpandedFields()
	if len(res.Columns) != len(fields) {
		return 0, ErrFillColumns(len(res.Columns), len(fields))
	}
	for i, values := range res.Rows {
		row := rs.rows[0]
		if i > 0 {
			if row, err = rs.AppendRow(); err != nil {
				return 0, err
			}
		}
		rec, _ := row.GetRecord(rs.primary.Name)
		for j, v := range values {
			if err := ptypes.SystemWriteString(rec.fieldList[j].value, v); err != nil {
				return 0, err
			}
		}
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("%v filled with %d rows: %v", rs, len(res.Rows), stmt))
	}
	return len(res.Rows), nil
}

func (rs *Rowset) FireEvent(ctx context.Context, ev progs.Event, summary *EventSummary) error {
	for _, row := range rs.rows {
		if err := row.FireEvent(ctx, ev, summary); err != nil {
			return err
		}
	}
	return nil
}

func (rs *Rowset) RunDefaults(ctx context.Context, summary *DefaultsSummary) error {
	for _, row := range rs.rows {
		if err := row.RunDefaults(ctx, summary); err != nil {
			return err
		}
	}
	return nil
}

// Key lookups reaching rowset are passed to parent row
func (rs *Rowset) Keylist(field string) Keylist {
	kl := Keylist{}
	if rs.parent != nil {
		rs.parent.keylist(field, nil, &kl)
	}
	return kl
}

func (rs *Rowset) ResolveRecord(name string) (*Record, bool) {
	if rs.parent != nil {
		return rs.parent.ResolveRecord(name)
	}
	return nil, false
}

func (rs *Rowset) ResolveField(rec, field string) (*Field, bool) {
	if rs.parent != nil {
		return rs.parent.ResolveField(rec, field)
	}
	return nil, false
}

func (rs *Rowset) ResolveScroll(primaryRec string) (*Rowset, bool) {
	if rs.DBRecordName() == primaryRec {
		return rs, true
	}
	if rs.parent != nil {
		return rs.parent.ResolveScroll(primaryRec)
	}
	return nil, false
}

func (rs *Rowset) String() string {
	if rs.primary == nil {
		return "root rowset"
	}
	return "rowset «" + rs.primary.Name + "»"
}
