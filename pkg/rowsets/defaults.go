/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rowsets

import (
	"context"
	"errors"
	"fmt"

	"github.com/voedger/cbuffer/pkg/defs"
	"github.com/voedger/cbuffer/pkg/goutils/logger"
	"github.com/voedger/cbuffer/pkg/goutils/timeu"
	"github.com/voedger/cbuffer/pkg/progs"
	"github.com/voedger/cbuffer/pkg/ptypes"
	"github.com/voedger/cbuffer/pkg/stmts"
	"github.com/voedger/cbuffer/pkg/trace"
)

// Runs constant defaults, non-constant defaults and then FieldDefault event if field is still blank
func (f *Field) runDefaults(ctx context.Context, summary *DefaultsSummary) error {
	if err := f.runConstantDefault(summary); err != nil {
		return err
	}
	if err := f.runNonConstantDefault(ctx, summary); err != nil {
		return err
	}
	if !f.value.IsBlank() {
		return nil
	}
	pre := f.value.IsUpdated()
	if err := f.runPrograms(ctx, progs.Event_FieldDefault, &summary.Events); err != nil {
		return err
	}
	if !pre && f.value.IsUpdated() {
		summary.fieldWasChanged()
	}
	return nil
}

// Writes constant or meta-value default to blank field.
// Key field is skipped if buffer context already has a value for it
func (f *Field) runConstantDefault(summary *DefaultsSummary) error {
	def := f.defn.Default
	if !def.IsConstant() || !f.value.IsBlank() {
		return nil
	}

	if f.defn.IsKey() && (!f.defn.IsEffDtKey() || f.rec.defn.IsTable() || f.rec.defn.IsView()) {
		if kl := f.Keylist(f.defn.Name); kl.HasNonBlankValue() {
			if logger.IsVerbose() {
				logger.Verbose(fmt.Sprintf("%v skipped, key value exists in context %v", f, kl))
			}
			return nil
		}
	}

	pre := f.value.IsUpdated()
	em := trace.FieldDefaultEmission{Record: f.defn.RecName, Field: f.defn.Name, Source: trace.SourceKind_Constant}

	if def.Kind == defs.DefaultKind_Meta {
		if err := f.writeMetaValue(def.Constant); err != nil {
			return err
		}
		em.Source = trace.SourceKind_Meta
		em.MetaValue = def.Constant
	} else if err := f.writeConstant(def.Constant); err != nil {
		return err
	}
	em.Value = f.value.ReadAsString()

	return f.completeDefault(pre, em, summary)
}

func (f *Field) writeMetaValue(meta string) error {
	clock := f.rec.row.rowset.rt.Clock
	if meta == defs.MetaValue_Date {
		switch v := f.value.(type) {
		case *ptypes.Date:
			return v.SystemWrite(timeu.Today(clock))
		case *ptypes.DateTime:
			return v.SystemWrite(timeu.Today(clock))
		}
	}
	return ErrUnexpectedDefault(meta, f.value)
}

func (f *Field) writeConstant(c string) error {
	switch v := f.value.(type) {
	case *ptypes.String:
		return v.SystemWrite(c)
	case *ptypes.Char:
		if r := []rune(c); len(r) == 1 {
			return v.SystemWrite(r[0])
		}
	}
	return ErrUnexpectedDefault(c, f.value)
}

// Selects default from default record by keys harvested from buffer context.
//
// Unresolvable key defers defaulting to the next pass
func (f *Field) runNonConstantDefault(ctx context.Context, summary *DefaultsSummary) error {
	def := f.defn.Default
	if !def.IsNonConstant() || !f.value.IsBlank() {
		return nil
	}

	if f.defn.IsKey() {
		if kl := f.Keylist(f.defn.Name); kl.IsFirstValueNonBlank() {
			if logger.IsVerbose() {
				logger.Verbose(fmt.Sprintf("%v skipped, key value exists in immediate context %v", f, kl))
			}
			return nil
		}
	}

	rt := f.rec.row.rowset.rt
	pre := f.value.IsUpdated()
	em := trace.FieldDefaultEmission{Record: f.defn.RecName, Field: f.defn.Name}

	defRec, err := rt.Defs.Record(def.Record)
	if err != nil {
		return err
	}
	stmt, err := rt.Library.NonConstantDefaultQuery(defRec, def.Field, contextKeys{f})
	if err != nil {
		if errors.Is(err, ptypes.ErrDeferredResolutionError) {
			if logger.IsVerbose() {
				logger.Verbose(fmt.Sprintf("%v default deferred: %v", f, err))
			}
			return nil
		}
		return err
	}
	rs, err := stmts.QueryOne(ctx, rt.Executor, stmt)
	if err != nil {
		return err
	}
	if rs != nil {
		if err := ptypes.SystemWriteString(f.value, rs.Rows[0][0]); err != nil {
			return err
		}
		em.Value = f.value.ReadAsString()
		em.Source = trace.SourceKind_Record
	}

	return f.completeDefault(pre, em, summary)
}

// Emits default if value was changed by this pass
func (f *Field) completeDefault(preUpdated bool, em trace.FieldDefaultEmission, summary *DefaultsSummary) error {
	if !preUpdated && f.value.IsUpdated() {
		summary.fieldWasChanged()
		return f.rec.row.rowset.rt.Sink.Submit(em)
	}
	if f.value.IsBlank() {
		summary.blankFieldWasSeen()
	}
	return nil
}

// Resolves default record keys from buffer context of field
type contextKeys struct {
	f *Field
}

func (k contextKeys) ResolveKey(field string) (string, bool) {
	v, ok := k.f.Keylist(field).FirstNonBlank()
	if !ok {
		return "", false
	}
	return v.ReadAsString(), true
}
