/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package main

import (
	"github.com/voedger/cbuffer/pkg/rowsets"
	"github.com/voedger/cbuffer/pkg/trace"
)

type CLIParams struct {
	// Directory with definition files
	Defs string
	// Definition store file. Components are imported from Defs before load if set
	DB string
	// Component names to import into DB
	Components []string
}

type WiredLoader struct {
	Config   rowsets.Config
	Recorder *trace.Recorder
}
