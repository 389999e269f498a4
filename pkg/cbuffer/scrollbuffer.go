/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package cbuffer

import (
	"fmt"

	"github.com/voedger/cbuffer/pkg/defs"
)

// Scroll buffer. Level of child scroll is always one greater than parent level
type ScrollBuffer struct {
	src        defs.IDefnSource
	level      int
	primaryRec string
	parent     *ScrollBuffer
	recBufs    []*RecordBuffer
	children   map[string]*ScrollBuffer
	childList  []*ScrollBuffer

	emittedSelf bool
	recCursor   int
	childCursor int
}

func newScrollBuffer(src defs.IDefnSource, level int, primaryRec string, parent *ScrollBuffer) *ScrollBuffer {
	return &ScrollBuffer{
		src:        src,
		level:      level,
		primaryRec: primaryRec,
		parent:     parent,
		children:   make(map[string]*ScrollBuffer),
	}
}

func (sb *ScrollBuffer) Level() int { return sb.level }

// Returns primary record name. Empty for root scroll
func (sb *ScrollBuffer) PrimaryRecName() string { return sb.primaryRec }

// Returns parent scroll. Nil for root scroll
func (sb *ScrollBuffer) Parent() *ScrollBuffer { return sb.parent }

func (sb *ScrollBuffer) RecordBuffers() []*RecordBuffer { return sb.recBufs }

// Returns child scrolls in creation order
func (sb *ScrollBuffer) ChildScrolls() []*ScrollBuffer { return sb.childList }

func (sb *ScrollBuffer) ChildScroll(primaryRec string) (*ScrollBuffer, bool) {
	c, ok := sb.children[primaryRec]
	return c, ok
}

// Returns existing child scroll or creates new one at next level
func (sb *ScrollBuffer) ChildScrollOrCreate(primaryRec string) *ScrollBuffer {
	if c, ok := sb.children[primaryRec]; ok {
		return c
	}
	c := newScrollBuffer(sb.src, sb.level+1, primaryRec, sb)
	sb.children[primaryRec] = c
	sb.childList = append(sb.childList, c)
	return c
}

// Returns first record buffer with the specified record name
func (sb *ScrollBuffer) RecordBuffer(rec string) (*RecordBuffer, bool) {
	for _, rb := range sb.recBufs {
		if rb.defn.Name == rec {
			return rb, true
		}
	}
	return nil, false
}

// Returns record buffer for the specified record, creates it if not exists
func (sb *ScrollBuffer) RecordBufferOrCreate(rec string) (*RecordBuffer, error) {
	if rb, ok := sb.RecordBuffer(rec); ok {
		return rb, nil
	}
	defn, err := sb.src.Record(rec)
	if err != nil {
		return nil, err
	}
	rb := newRecordBuffer(sb, defn)
	sb.recBufs = append(sb.recBufs, rb)
	return rb, nil
}

// Adds page field token to record buffer of this scroll
func (sb *ScrollBuffer) AddPageField(tok *defs.PageToken) error {
	rb, err := sb.RecordBufferOrCreate(tok.RecName)
	if err != nil {
		return err
	}
	return rb.AddPageField(tok)
}

// Returns record field buffer.
//
// Missing record buffer is a structural violation, missing field is not found error
func (sb *ScrollBuffer) RecordFieldBuffer(rec, field string) (*RecordFieldBuffer, error) {
	rb, ok := sb.RecordBuffer(rec)
	if !ok {
		return nil, ErrRecordBufferNotFound(rec, sb)
	}
	fb, ok := rb.FieldBuffer(field)
	if !ok {
		return nil, ErrFieldBufferNotFound(rec, field)
	}
	return fb, nil
}

func (sb *ScrollBuffer) Next() IStreamable {
	if !sb.emittedSelf {
		sb.emittedSelf = true
		return sb
	}
	for ; sb.recCursor < len(sb.recBufs); sb.recCursor++ {
		if n := sb.recBufs[sb.recCursor].Next(); n != nil {
			return n
		}
	}
	for ; sb.childCursor < len(sb.childList); sb.childCursor++ {
		if n := sb.childList[sb.childCursor].Next(); n != nil {
			return n
		}
	}
	return nil
}

func (sb *ScrollBuffer) Reset() {
	sb.emittedSelf = false
	sb.recCursor = 0
	sb.childCursor = 0
	for _, rb := range sb.recBufs {
		rb.Reset()
	}
	for _, c := range sb.childList {
		c.Reset()
	}
}

func (sb *ScrollBuffer) String() string {
	return fmt.Sprintf("scroll buffer «%s» level %d", sb.primaryRec, sb.level)
}
