/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package progs

import (
	"context"

	"github.com/voedger/cbuffer/pkg/goutils/logger"
)

// In-memory program registry
type Registry struct {
	programs map[ProgramKey]IProgram
}

// Registers program. Program with the same key is replaced
func (r *Registry) Add(p IProgram) *Registry {
	r.programs[p.Key()] = p
	return r
}

func (r *Registry) RecordProgram(rec, field string, ev Event) (IProgram, bool) {
	p, ok := r.programs[RecordProgramKey(rec, field, ev)]
	return p, ok
}

func (r *Registry) ComponentProgram(comp, market, rec, field string, ev Event) (IProgram, bool) {
	p, ok := r.programs[ComponentProgramKey(comp, market, rec, field, ev)]
	return p, ok
}

func (r *Registry) Len() int { return len(r.programs) }

// Enumerates registered programs
func (r *Registry) Programs(cb func(IProgram)) {
	for _, p := range r.programs {
		cb(p)
	}
}

type nopInterpreter struct{}

func (nopInterpreter) Run(_ context.Context, ec ExecContext) error {
	if logger.IsVerbose() {
		logger.Verbose("run", ec.Program.Key(), "level", ec.ScrollLevel, "row", ec.RowIndex)
	}
	return nil
}
