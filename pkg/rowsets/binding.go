/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rowsets

import (
	"context"

	"github.com/voedger/cbuffer/pkg/cbuffer"
	"github.com/voedger/cbuffer/pkg/progs"
)

// Component buffer capabilities of field
type binding interface {
	recordFieldBuffer() *cbuffer.RecordFieldBuffer
	fireEvent(ctx context.Context, f *Field, ev progs.Event, summary *EventSummary) error
	runDefaults(ctx context.Context, f *Field, summary *DefaultsSummary) error
	keylist(f *Field, field string) Keylist
	// Returns record to resolve contextual references from, nil if field has no context
	context(f *Field) *Record
}

// Field linked to record field buffer
type bufferBinding struct {
	fb *cbuffer.RecordFieldBuffer
}

func (b bufferBinding) recordFieldBuffer() *cbuffer.RecordFieldBuffer { return b.fb }

func (b bufferBinding) fireEvent(ctx context.Context, f *Field, ev progs.Event, summary *EventSummary) error {
	return f.runPrograms(ctx, ev, summary)
}

func (b bufferBinding) runDefaults(ctx context.Context, f *Field, summary *DefaultsSummary) error {
	return f.runDefaults(ctx, summary)
}

func (b bufferBinding) keylist(f *Field, field string) Keylist {
	kl := Keylist{}
	f.rec.row.keylist(field, f, &kl)
	return kl
}

func (b bufferBinding) context(f *Field) *Record { return f.rec }

// Field out of component buffer
type standaloneBinding struct{}

func (standaloneBinding) recordFieldBuffer() *cbuffer.RecordFieldBuffer { return nil }

// Search record has no buffer, search events are fired on its fields
func (standaloneBinding) fireEvent(ctx context.Context, f *Field, ev progs.Event, summary *EventSummary) error {
	switch ev {
	case progs.Event_SearchInit, progs.Event_SearchSave:
		return f.runPrograms(ctx, ev, summary)
	}
	return nil
}

func (standaloneBinding) runDefaults(context.Context, *Field, *DefaultsSummary) error { return nil }

func (standaloneBinding) keylist(*Field, string) Keylist { return Keylist{} }

func (standaloneBinding) context(*Field) *Record { return nil }
