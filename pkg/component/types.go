/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package component

import (
	"github.com/voedger/cbuffer/pkg/cbuffer"
	"github.com/voedger/cbuffer/pkg/defs"
	"github.com/voedger/cbuffer/pkg/rowsets"
)

// Loaded component: definition, buffer tree and runtime value graph
type Component struct {
	defn   *defs.Component
	buffer *cbuffer.ComponentBuffer
	rt     *rowsets.Runtime
	root   *rowsets.Rowset
	search *rowsets.Record
	stats  Stats
}

// Load statistics
type Stats struct {
	// Record names in order of prefetch
	Listed []string
	// Default processing passes run
	DefaultPasses int
	// Fields changed by all default passes
	FieldsDefaulted int
	// Programs executed by all events, FieldDefault included
	ProgramsExecuted int
}

type options struct {
	searchKeys [][2]string
	passLimit  int
}

type Option func(*options)

// Sets search record key before search events are fired
func WithSearchKey(field, value string) Option {
	return func(o *options) { o.searchKeys = append(o.searchKeys, [2]string{field, value}) }
}

func WithDefaultPassLimit(n int) Option {
	return func(o *options) { o.passLimit = n }
}
