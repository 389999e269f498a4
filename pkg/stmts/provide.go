/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package stmts

import (
	"github.com/voedger/cbuffer/pkg/goutils/timeu"
	"github.com/voedger/cbuffer/pkg/objcache"
)

// Returns statement library. Today's date for effective-dated statements is taken from clock
func NewLibrary(clock timeu.ITime, cacheSize int) *Library {
	if cacheSize <= 0 {
		cacheSize = DefaultTemplateCacheSize
	}
	return &Library{
		clock:     clock,
		templates: objcache.New[string, *template](cacheSize),
	}
}

func NewMemExecutor() *MemExecutor {
	return &MemExecutor{tables: make(map[string][]Row)}
}
