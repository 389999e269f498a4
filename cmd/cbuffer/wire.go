//go:generate go run github.com/google/wire/cmd/wire
//go:build wireinject
// +build wireinject

/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package main

import (
	"github.com/google/wire"

	"github.com/voedger/cbuffer/pkg/trace"
)

func wireLoader(params CLIParams) (WiredLoader, func(), error) {
	panic(
		wire.Build(
			provideDefinitions,
			provideDefnSource,
			trace.NewRecorder,
			provideSink,
			provideConfig,
			wire.Struct(new(WiredLoader), "*"),
		),
	)
}
