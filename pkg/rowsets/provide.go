/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rowsets

import (
	"github.com/voedger/cbuffer/pkg/goutils/timeu"
	"github.com/voedger/cbuffer/pkg/progs"
	"github.com/voedger/cbuffer/pkg/stmts"
	"github.com/voedger/cbuffer/pkg/trace"
)

// Creates runtime. Missing collaborators are replaced by defaults:
// empty registry, no-op interpreter and sink, real clock, in-memory executor
func New(cfg Config) *Runtime {
	if cfg.Registry == nil {
		cfg.Registry = progs.NewRegistry()
	}
	if cfg.Interpreter == nil {
		cfg.Interpreter = progs.NewNopInterpreter()
	}
	if cfg.Sink == nil {
		cfg.Sink = trace.NewNopSink()
	}
	if cfg.Clock == nil {
		cfg.Clock = timeu.NewITime()
	}
	if cfg.Library == nil {
		cfg.Library = stmts.NewLibrary(cfg.Clock, stmts.DefaultTemplateCacheSize)
	}
	if cfg.Executor == nil {
		cfg.Executor = stmts.NewMemExecutor()
	}
	return &Runtime{Config: cfg}
}
