/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package cbuffer

import (
	"golang.org/x/exp/slices"

	"github.com/voedger/cbuffer/pkg/defs"
)

// Record buffer, owns record field buffers
type RecordBuffer struct {
	scroll    *ScrollBuffer
	defn      *defs.Record
	level     int
	isPrimary bool
	fields    map[string]*RecordFieldBuffer
	fieldList []*RecordFieldBuffer
	expanded  bool

	emittedSelf bool
	sorted      bool
	cursor      int
}

// Creates record buffer. Keyed EFFDT field is added first
func newRecordBuffer(scroll *ScrollBuffer, defn *defs.Record) *RecordBuffer {
	rb := &RecordBuffer{
		scroll:    scroll,
		defn:      defn,
		level:     scroll.level,
		isPrimary: scroll.primaryRec != "" && scroll.primaryRec == defn.Name,
		fields:    make(map[string]*RecordFieldBuffer),
	}
	if eff, ok := defn.EffDtKey(); ok {
		rb.addField(eff, nil)
	}
	return rb
}

func (rb *RecordBuffer) Scroll() *ScrollBuffer { return rb.scroll }

func (rb *RecordBuffer) Defn() *defs.Record { return rb.defn }

func (rb *RecordBuffer) RecName() string { return rb.defn.Name }

func (rb *RecordBuffer) ScrollLevel() int { return rb.level }

// Returns is record the primary record of its scroll
func (rb *RecordBuffer) IsPrimary() bool { return rb.isPrimary }

func (rb *RecordBuffer) IsExpanded() bool { return rb.expanded }

func (rb *RecordBuffer) FieldBuffer(name string) (*RecordFieldBuffer, bool) {
	fb, ok := rb.fields[name]
	return fb, ok
}

// Returns field buffers in current order
func (rb *RecordBuffer) FieldBuffers() []*RecordFieldBuffer { return rb.fieldList }

// Adds field from page token. Repeated fields are ignored
func (rb *RecordBuffer) AddPageField(tok *defs.PageToken) error {
	if fb, ok := rb.fields[tok.FieldName]; ok {
		if fb.token == nil {
			fb.token = tok
		}
		return nil
	}
	f, ok := rb.defn.Field(tok.FieldName)
	if !ok {
		return defs.ErrFieldNotFound(rb.defn.Name, tok.FieldName)
	}
	rb.addField(f, tok)
	return nil
}

// Replaces buffer fields with all record fields in expanded declaration order.
//
// Fields of expanded buffer are never re-sorted by field number
func (rb *RecordBuffer) ExpandEntireRecord() {
	if rb.expanded {
		return
	}
	tokens := make(map[string]*defs.PageToken, len(rb.fieldList))
	for _, fb := range rb.fieldList {
		tokens[fb.FieldName()] = fb.token
	}
	rb.fields = make(map[string]*RecordFieldBuffer)
	rb.fieldList = nil
	for _, f := range rb.defn.ExpandedFields() {
		rb.addField(f, tokens[f.Name])
	}
	rb.expanded = true
}

func (rb *RecordBuffer) addField(f *defs.RecordField, tok *defs.PageToken) {
	fb := newRecordFieldBuffer(rb, f, tok)
	rb.fields[f.Name] = fb
	rb.fieldList = append(rb.fieldList, fb)
	rb.sorted = false
}

func (rb *RecordBuffer) Next() IStreamable {
	if !rb.emittedSelf {
		rb.emittedSelf = true
		return rb
	}
	if !rb.sorted {
		if !rb.expanded {
			slices.SortStableFunc(rb.fieldList, func(a, b *RecordFieldBuffer) bool {
				return a.defn.Num < b.defn.Num
			})
		}
		rb.sorted = true
	}
	for ; rb.cursor < len(rb.fieldList); rb.cursor++ {
		if n := rb.fieldList[rb.cursor].Next(); n != nil {
			return n
		}
	}
	return nil
}

func (rb *RecordBuffer) Reset() {
	rb.emittedSelf = false
	rb.cursor = 0
	for _, fb := range rb.fieldList {
		fb.Reset()
	}
}

func (rb *RecordBuffer) String() string { return "record buffer «" + rb.defn.Name + "»" }
