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

// Record field. Value slot identity never changes, held value may be replaced by writes
type Field struct {
	rec  *Record
	defn *defs.RecordField
	bind binding

	value       ptypes.IPrimitive
	visible     *ptypes.Boolean
	displayOnly *ptypes.Boolean
	name        *ptypes.String

	dropDown []DropDownItem
	readOnly bool
}

func newField(rec *Record, defn *defs.RecordField, fb *cbuffer.RecordFieldBuffer) *Field {
	f := &Field{
		rec:         rec,
		defn:        defn,
		bind:        standaloneBinding{},
		value:       defn.Constraint().AllocPrimitive(),
		visible:     ptypes.NewBoolean(true),
		displayOnly: ptypes.NewBoolean(false),
		name:        ptypes.NewString(defn.Name),
	}
	f.name.SetReadOnly()
	if fb != nil {
		f.bind = bufferBinding{fb: fb}
		if tok := fb.PageToken(); tok != nil {
			f.visible = ptypes.NewBoolean(!tok.FieldUse.Contains(defs.FieldUse_Invisible))
			f.displayOnly = ptypes.NewBoolean(tok.FieldUse.Contains(defs.FieldUse_DisplayOnly))
		}
	}
	return f
}

func (f *Field) Kind() ptypes.Kind { return ptypes.Kind_Field }

func (f *Field) IsReadOnly() bool { return f.readOnly }

// Marks field and its value read-only
func (f *Field) SetReadOnly() { MarkReadOnly(f) }

func (f *Field) IsSentinel() bool { return false }

func (f *Field) Name() string { return f.defn.Name }

func (f *Field) Defn() *defs.RecordField { return f.defn }

func (f *Field) Record() *Record { return f.rec }

// Returns value, bypassing component buffer access check
func (f *Field) Value() ptypes.IPrimitive { return f.value }

// Returns value as "Value" property does.
//
// Returns ErrIllegalNonBufferAccess if field is out of component buffer but its record is buffer-bound
func (f *Field) ValueRef() (ptypes.IPrimitive, error) {
	if f.rec.buf != nil && f.bind.recordFieldBuffer() == nil {
		return nil, ErrIllegalNonBufferAccess(f.rec.defn.Name, f.defn.Name)
	}
	return f.value, nil
}

func (f *Field) Visible() *ptypes.Boolean { return f.visible }

func (f *Field) DisplayOnly() *ptypes.Boolean { return f.displayOnly }

func (f *Field) Hide() error { return f.visible.SystemWrite(false) }

func (f *Field) Unhide() error { return f.visible.SystemWrite(true) }

// Returns record field buffer, nil for standalone field
func (f *Field) RecordFieldBuffer() *cbuffer.RecordFieldBuffer { return f.bind.recordFieldBuffer() }

func (f *Field) IsBufferBound() bool { return f.bind.recordFieldBuffer() != nil }

func (f *Field) ScrollLevel() int { return f.rec.ScrollLevel() }

// Returns 1-based index of the row field belongs to
func (f *Field) RowIndex() int { return f.rec.row.Index() }

// Blanks value so the next default processing pass defaults it again
func (f *Field) SetDefault() error { return f.value.SetBlank() }

// Returns long name of label. Unknown label gives empty string
func (f *Field) LongLabel(id string) string {
	l, ok := f.defn.Label(id)
	if !ok {
		return ""
	}
	return l.Long
}

func (f *Field) AddDropDownItem(code, descr string) {
	f.dropDown = append(f.dropDown, DropDownItem{Code: code, Descr: descr})
}

func (f *Field) ClearDropDownList() { f.dropDown = nil }

func (f *Field) DropDownItems() []DropDownItem { return f.dropDown }

// Returns related display field of this display control field
func (f *Field) Related(rec, field string) (*Field, error) {
	fb := f.bind.recordFieldBuffer()
	if fb == nil || fb.PageToken() == nil || !fb.PageToken().Flags.Contains(defs.TokenFlag_DisplayControl) {
		return nil, ErrNoRelatedToken(f)
	}
	relBuf, err := fb.Related(rec, field)
	if err != nil {
		return nil, err
	}
	related, ok := f.ResolveField(rec, field)
	if !ok {
		return nil, cbuffer.ErrFieldBufferNotFound(rec, field)
	}
	if related.bind.recordFieldBuffer() != relBuf {
		return nil, ErrRelatedMismatch(related)
	}
	return related, nil
}

func (f *Field) FireEvent(ctx context.Context, ev progs.Event, summary *EventSummary) error {
	return f.bind.fireEvent(ctx, f, ev, summary)
}

func (f *Field) RunDefaults(ctx context.Context, summary *DefaultsSummary) error {
	return f.bind.runDefaults(ctx, f, summary)
}

func (f *Field) Keylist(field string) Keylist { return f.bind.keylist(f, field) }

func (f *Field) ResolveRecord(name string) (*Record, bool) {
	if rec := f.bind.context(f); rec != nil {
		return rec.ResolveRecord(name)
	}
	return nil, false
}

func (f *Field) ResolveField(rec, field string) (*Field, bool) {
	if r := f.bind.context(f); r != nil {
		return r.ResolveField(rec, field)
	}
	return nil, false
}

func (f *Field) ResolveScroll(primaryRec string) (*Rowset, bool) {
	if rec := f.bind.context(f); rec != nil {
		return rec.ResolveScroll(primaryRec)
	}
	return nil, false
}

func (f *Field) String() string { return "field " + f.defn.String() }
