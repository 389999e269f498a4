/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package cbuffer

import (
	"github.com/voedger/cbuffer/pkg/defs"
)

// Record field buffer, leaf of buffer tree
type RecordFieldBuffer struct {
	recBuf  *RecordBuffer
	defn    *defs.RecordField
	token   *defs.PageToken
	emitted bool
}

func newRecordFieldBuffer(recBuf *RecordBuffer, defn *defs.RecordField, tok *defs.PageToken) *RecordFieldBuffer {
	return &RecordFieldBuffer{recBuf: recBuf, defn: defn, token: tok}
}

func (fb *RecordFieldBuffer) RecordBuffer() *RecordBuffer { return fb.recBuf }

func (fb *RecordFieldBuffer) Defn() *defs.RecordField { return fb.defn }

// Returns true record name, subrecord name for fields originating in subrecord
func (fb *RecordFieldBuffer) RecName() string { return fb.defn.RecName }

func (fb *RecordFieldBuffer) FieldName() string { return fb.defn.Name }

// Returns originating page token, nil for eagerly added or expanded fields
func (fb *RecordFieldBuffer) PageToken() *defs.PageToken { return fb.token }

// Returns buffer of related-display field linked to this display-control field.
//
// Buffer is searched in the own scroll, then in parent scrolls
func (fb *RecordFieldBuffer) Related(rec, field string) (*RecordFieldBuffer, error) {
	if fb.token == nil {
		return nil, ErrFieldBufferNotFound(rec, field)
	}
	if _, ok := fb.token.RelatedField(rec, field); !ok {
		return nil, ErrFieldBufferNotFound(rec, field)
	}
	for sb := fb.recBuf.scroll; sb != nil; sb = sb.parent {
		if rb, ok := sb.RecordBuffer(rec); ok {
			if related, ok := rb.FieldBuffer(field); ok {
				return related, nil
			}
		}
	}
	return nil, ErrFieldBufferNotFound(rec, field)
}

func (fb *RecordFieldBuffer) Next() IStreamable {
	if fb.emitted {
		return nil
	}
	fb.emitted = true
	return fb
}

func (fb *RecordFieldBuffer) Reset() { fb.emitted = false }

func (fb *RecordFieldBuffer) String() string { return fb.defn.String() }
