/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package defs

import "github.com/voedger/cbuffer/pkg/objcache"

// Returns memoizing decorator for definitions source.
//
// Each definition is fetched from src once, subsequent calls return the cached instance.
// Errors are not cached
func NewCachedSource(src IDefnSource) IDefnSource {
	return &cachedSource{
		src:        src,
		records:    objcache.NewUnbounded[string, *Record](),
		pages:      objcache.NewUnbounded[string, *Page](),
		components: objcache.NewUnbounded[string, *Component](),
	}
}
