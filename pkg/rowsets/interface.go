/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rowsets

import (
	"context"

	"github.com/voedger/cbuffer/pkg/progs"
	"github.com/voedger/cbuffer/pkg/ptypes"
)

// Runtime entity positioned in component buffer: rowset, row, record or field.
//
// Standalone entities implement every capability as no-op
type IBufferEntity interface {
	ptypes.IValue

	// Fires event on entity and all its buffer-bound descendants
	FireEvent(ctx context.Context, ev progs.Event, summary *EventSummary) error

	// Runs constant and non-constant default processing on entity and descendants
	RunDefaults(ctx context.Context, summary *DefaultsSummary) error

	// Returns values of fields with given name harvested from buffer context
	Keylist(field string) Keylist

	// Returns nearest record with given name, walking up the graph
	ResolveRecord(name string) (*Record, bool)

	// Returns nearest record field, walking up the graph
	ResolveField(rec, field string) (*Field, bool)

	// Returns nearest rowset with given primary record, walking up the graph
	ResolveScroll(primaryRec string) (*Rowset, bool)
}

// Object with built-in methods and properties dispatched by name.
//
// Names are case-insensitive
type IObject interface {
	ptypes.IValue
	CallMethod(ctx context.Context, name string, args ...ptypes.IValue) (ptypes.IValue, error)
	Property(name string) (ptypes.IValue, error)
}
