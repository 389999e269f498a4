/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package main

import (
	"errors"
	"os"

	"github.com/voedger/cbuffer/pkg/defparser"
	"github.com/voedger/cbuffer/pkg/defs"
	"github.com/voedger/cbuffer/pkg/defstore"
	"github.com/voedger/cbuffer/pkg/goutils/logger"
	"github.com/voedger/cbuffer/pkg/rowsets"
	"github.com/voedger/cbuffer/pkg/trace"
)

var errNoDefinitions = errors.New("definitions directory is not specified")

func provideDefinitions(params CLIParams) (*defparser.Result, error) {
	if params.Defs == "" {
		return nil, errNoDefinitions
	}
	return defparser.ParseFS(os.DirFS(params.Defs), ".")
}

// Returns memoized definition source, parsed definitions or definition store
func provideDefnSource(params CLIParams, parsed *defparser.Result) (defs.IDefnSource, func(), error) {
	if params.DB == "" {
		return defs.NewCachedSource(parsed.Defs), func() {}, nil
	}
	store, err := defstore.Open(params.DB)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Error(err)
		}
	}
	if len(params.Components) > 0 {
		if err := store.Import(parsed.Defs, params.Components...); err != nil {
			cleanup()
			return nil, nil, err
		}
	}
	return defs.NewCachedSource(store), cleanup, nil
}

func provideSink(r *trace.Recorder) trace.ISink { return r }

func provideConfig(src defs.IDefnSource, parsed *defparser.Result, sink trace.ISink) rowsets.Config {
	return rowsets.Config{
		Defs:     src,
		Registry: parsed.Programs,
		Executor: parsed.Data,
		Sink:     sink,
	}
}
