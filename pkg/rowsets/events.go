/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rowsets

import (
	"context"
	"fmt"

	"github.com/voedger/cbuffer/pkg/goutils/logger"
	"github.com/voedger/cbuffer/pkg/progs"
	"github.com/voedger/cbuffer/pkg/ptypes"
	"github.com/voedger/cbuffer/pkg/trace"
)

// Runs record program, then component program for field event.
// Programs without statements are skipped
func (f *Field) runPrograms(ctx context.Context, ev progs.Event, summary *EventSummary) error {
	rt := f.rec.row.rowset.rt
	rec, fld := f.defn.RecName, f.defn.Name

	if p, ok := rt.Registry.RecordProgram(rec, fld, ev); ok && p.HasAtLeastOneStatement() {
		if err := f.runProgram(ctx, p, summary); err != nil {
			return err
		}
	}
	if p, ok := rt.Registry.ComponentProgram(rt.Component, rt.Market, rec, fld, ev); ok && p.HasAtLeastOneStatement() {
		if err := f.runProgram(ctx, p, summary); err != nil {
			return err
		}
	}
	return nil
}

func (f *Field) runProgram(ctx context.Context, p progs.IProgram, summary *EventSummary) error {
	rt := f.rec.row.rowset.rt
	ec := progs.ExecContext{
		Program:     p,
		ScrollLevel: f.ScrollLevel(),
		Context:     f,
	}
	if f.IsBufferBound() {
		ec.RowIndex = f.RowIndex()
	}
	if err := rt.Sink.Submit(trace.PCBeginEmission{Program: p.Key().String(), Level: ec.ScrollLevel, Row: ec.RowIndex}); err != nil {
		return err
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("run %v on %v", p.Key(), f))
	}
	if err := rt.Interpreter.Run(ctx, ec); err != nil {
		return ptypes.EnrichError(err, "%v on %v", p.Key(), f)
	}
	summary.ProgramsExecuted++
	return nil
}
