/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package cbuffer

import (
	"fmt"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/voedger/cbuffer/pkg/defs"
	"github.com/voedger/cbuffer/pkg/goutils/logger"
)

// Component buffer: root scroll and the scroll cursor used while assembling
type ComponentBuffer struct {
	src    defs.IDefnSource
	root   *ScrollBuffer
	cursor *ScrollBuffer
}

func (cb *ComponentBuffer) Root() *ScrollBuffer { return cb.root }

// Adds page field to scroll at level with primary record.
//
// Cursor may descend one level at a time, ascending is unlimited
func (cb *ComponentBuffer) AddPageField(tok *defs.PageToken, level int, primaryRec string) error {
	sb, err := cb.moveTo(level, primaryRec)
	if err != nil {
		return err
	}
	return sb.AddPageField(tok)
}

// Ensures scroll at level with primary record exists and places cursor on it
func (cb *ComponentBuffer) OpenScroll(level int, primaryRec string) (*ScrollBuffer, error) {
	return cb.moveTo(level, primaryRec)
}

func (cb *ComponentBuffer) moveTo(level int, primaryRec string) (*ScrollBuffer, error) {
	cur := cb.cursor
	if level > cur.level {
		if level != cur.level+1 {
			return nil, ErrScrollLevelJump(cur.level, level)
		}
		cur = cur.ChildScrollOrCreate(primaryRec)
	} else {
		for level < cur.level {
			cur = cur.parent
		}
		if level > 0 && cur.primaryRec != primaryRec {
			cur = cur.parent.ChildScrollOrCreate(primaryRec)
		}
	}
	cb.cursor = cur
	return cur, nil
}

// Returns scroll buffer by path of primary record names from root
func (cb *ComponentBuffer) Scroll(path ...string) (*ScrollBuffer, bool) {
	sb := cb.root
	for _, rec := range path {
		c, ok := sb.ChildScroll(rec)
		if !ok {
			return nil, false
		}
		sb = c
	}
	return sb, true
}

// Renders buffer tree, one node per line
func (cb *ComponentBuffer) Dump() string {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	cb.root.Reset()
	defer cb.root.Reset()
	for n := cb.root.Next(); n != nil; n = cb.root.Next() {
		switch node := n.(type) {
		case *ScrollBuffer:
			_, _ = fmt.Fprintf(bb, "%sScroll %d «%s»\n", indent(node.level, 0), node.level, node.primaryRec)
		case *RecordBuffer:
			p := ""
			if node.isPrimary {
				p = " (primary)"
			}
			_, _ = fmt.Fprintf(bb, "%sRecord %s%s\n", indent(node.level, 1), node.defn.Name, p)
		case *RecordFieldBuffer:
			_, _ = fmt.Fprintf(bb, "%s%s\n", indent(node.recBuf.level, 2), node.defn)
		}
	}
	if logger.IsTrace() {
		logger.Trace(bb.String())
	}
	return bb.String()
}

func indent(level, depth int) string {
	return strings.Repeat("  ", level*3+depth)
}
