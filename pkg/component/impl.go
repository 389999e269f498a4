/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package component

import (
	"context"
	"fmt"

	"github.com/voedger/cbuffer/pkg/cbuffer"
	"github.com/voedger/cbuffer/pkg/defs"
	"github.com/voedger/cbuffer/pkg/goutils/logger"
	"github.com/voedger/cbuffer/pkg/progs"
	"github.com/voedger/cbuffer/pkg/ptypes"
	"github.com/voedger/cbuffer/pkg/rowsets"
)

func (c *Component) Defn() *defs.Component { return c.defn }

func (c *Component) Buffer() *cbuffer.ComponentBuffer { return c.buffer }

func (c *Component) Runtime() *rowsets.Runtime { return c.rt }

// Returns root rowset of runtime value graph
func (c *Component) Root() *rowsets.Rowset { return c.root }

// Returns search record, nil if component has no search record
func (c *Component) SearchRecord() *rowsets.Record { return c.search }

func (c *Component) Stats() Stats { return c.stats }

// Renders buffer tree
func (c *Component) Dump() string { return c.buffer.Dump() }

// Renders rows and values of buffer-bound fields
func (c *Component) EmitScrolls() string { return c.root.EmitScrolls() }

// Fires save events on root rowset: SaveEdit, SavePreChange, WorkFlow, SavePostChange
func (c *Component) Save(ctx context.Context) error {
	for _, ev := range saveEvents {
		if err := c.fire(ctx, c.root, ev); err != nil {
			return err
		}
	}
	return nil
}

func (c *Component) String() string { return c.defn.String() }

func (c *Component) load(ctx context.Context, o options) error {
	if err := c.initSearch(ctx, o.searchKeys); err != nil {
		return err
	}

	listed, err := listRecords(c.rt.Defs, c.defn.Pages())
	if err != nil {
		return err
	}
	c.stats.Listed = listed

	if err := c.assemble(ctx); err != nil {
		return err
	}
	if c.root, err = c.rt.NewRowset(c.buffer.Root()); err != nil {
		return err
	}

	if err := c.fire(ctx, c.root, progs.Event_PreBuild); err != nil {
		return err
	}
	if err := c.runDefaults(ctx, o.passLimit); err != nil {
		return err
	}
	for _, ev := range buildEvents {
		if err := c.fire(ctx, c.root, ev); err != nil {
			return err
		}
	}

	if logger.IsVerbose() {
		logger.VerboseCtx(ctx, fmt.Sprintf("loaded: %d records listed, %d default passes, %d fields defaulted, %d programs executed",
			len(c.stats.Listed), c.stats.DefaultPasses, c.stats.FieldsDefaulted, c.stats.ProgramsExecuted))
	}
	return nil
}

func (c *Component) initSearch(ctx context.Context, keys [][2]string) error {
	name := c.defn.SearchRecordToUse()
	if name == "" {
		if len(keys) > 0 {
			return ErrNoSearchRecord(c.defn)
		}
		return nil
	}
	defn, err := c.rt.Defs.Record(name)
	if err != nil {
		return err
	}
	if c.search, err = c.rt.NewStandaloneRecord(defn); err != nil {
		return err
	}
	c.rt.SetSearchRecord(c.search)

	if err := c.fire(ctx, c.search, progs.Event_SearchInit); err != nil {
		return err
	}
	for _, kv := range keys {
		f, ok := c.search.Field(kv[0])
		if !ok {
			return ErrSearchKeyNotFound(name, kv[0])
		}
		if err := ptypes.SystemWriteString(f.Value(), kv[1]); err != nil {
			return err
		}
	}
	return c.fire(ctx, c.search, progs.Event_SearchSave)
}

func (c *Component) assemble(ctx context.Context) error {
	streams := make([]cbuffer.PageStream, 0, len(c.defn.Pages()))
	for _, p := range c.defn.Pages() {
		tokens, err := defs.TokenStream(c.rt.Defs, p)
		if err != nil {
			return err
		}
		streams = append(streams, cbuffer.PageStream{Page: p, Tokens: tokens})
		if logger.IsTrace() {
			logger.TraceCtx(logger.WithContextAttrs(ctx, logger.LogAttr_Page, p), len(tokens), "tokens")
		}
	}
	return c.buffer.Assemble(streams...)
}

// Runs default processing passes until a pass changes nothing or limit is reached
func (c *Component) runDefaults(ctx context.Context, limit int) error {
	for pass := 1; pass <= limit; pass++ {
		summary := rowsets.DefaultsSummary{}
		if err := c.root.RunDefaults(ctx, &summary); err != nil {
			return err
		}
		c.stats.DefaultPasses++
		c.stats.FieldsDefaulted += summary.FieldsChanged
		c.stats.ProgramsExecuted += summary.Events.ProgramsExecuted
		if logger.IsVerbose() {
			logger.VerboseCtx(ctx, fmt.Sprintf("default pass %d: %v", pass, summary))
		}
		if summary.FieldsChanged == 0 {
			return nil
		}
	}
	logger.WarningCtx(ctx, fmt.Sprintf("defaults are not settled after %d passes", limit))
	return nil
}

func (c *Component) fire(ctx context.Context, e rowsets.IBufferEntity, ev progs.Event) error {
	summary := rowsets.EventSummary{}
	if err := e.FireEvent(ctx, ev, &summary); err != nil {
		return err
	}
	c.stats.ProgramsExecuted += summary.ProgramsExecuted
	return nil
}
