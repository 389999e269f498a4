/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package component

import (
	"context"

	"github.com/voedger/cbuffer/pkg/cbuffer"
	"github.com/voedger/cbuffer/pkg/goutils/logger"
	"github.com/voedger/cbuffer/pkg/rowsets"
)

// Loads component the way the platform does:
//   - allocates search record, fires SearchInit, applies search keys and fires SearchSave,
//   - prefetches records of all pages, subpages first, then secondary pages,
//   - assembles buffer tree from page token streams and allocates root rowset,
//   - fires PreBuild, runs default processing passes until nothing changes,
//   - fires FieldFormula, RowInit and PostBuild.
//
// Component and market of cfg are replaced by the loaded component ones
func Load(ctx context.Context, cfg rowsets.Config, name, market string, opts ...Option) (*Component, error) {
	o := options{passLimit: DefaultPassLimit}
	for _, opt := range opts {
		opt(&o)
	}

	defn, err := cfg.Defs.Component(name, market)
	if err != nil {
		return nil, err
	}
	cfg.Component, cfg.Market = defn.Name, defn.Market
	ctx = logger.WithContextAttrs(ctx, logger.LogAttr_Component, defn.Name+"."+defn.Market)

	c := &Component{
		defn:   defn,
		buffer: cbuffer.New(cfg.Defs),
		rt:     rowsets.New(cfg),
	}
	if err := c.load(ctx, o); err != nil {
		return nil, err
	}
	return c, nil
}
