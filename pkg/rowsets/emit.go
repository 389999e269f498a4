/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rowsets

import (
	"fmt"
	"io"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/voedger/cbuffer/pkg/goutils/logger"
)

// Renders rows, records and values of buffer-bound fields, one per line
func (rs *Rowset) EmitScrolls() string {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	rs.emit(bb, 0)
	if logger.IsVerbose() {
		logger.Verbose(bb.String())
	}
	return bb.String()
}

func (rs *Rowset) emit(w io.Writer, depth int) {
	_, _ = fmt.Fprintf(w, "%sScroll %d «%s»\n", strings.Repeat(emitIndent, depth), rs.ScrollLevel(), rs.DBRecordName())
	for i, row := range rs.rows {
		_, _ = fmt.Fprintf(w, "%sRow %d\n", strings.Repeat(emitIndent, depth+1), i+1)
		row.emit(w, depth+2)
	}
}

func (row *Row) emit(w io.Writer, depth int) {
	for _, rec := range row.records {
		if rec.buf == nil {
			continue
		}
		_, _ = fmt.Fprintf(w, "%sRecord %s\n", strings.Repeat(emitIndent, depth), rec.defn.Name)
		for _, f := range rec.fieldList {
			if !f.IsBufferBound() {
				continue
			}
			_, _ = fmt.Fprintf(w, "%s%s='%s'\n", strings.Repeat(emitIndent, depth+1), f.defn.Name, f.value.ReadAsString())
		}
	}
	for _, rs := range row.rowsets {
		rs.emit(w, depth)
	}
}
