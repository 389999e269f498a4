/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package objcache

import (
	"github.com/voedger/cbuffer/pkg/objcache/internal/hashicorp"
	"github.com/voedger/cbuffer/pkg/objcache/internal/imcache"
)

// Creates and return new LRU object cache with K key type and V value type.
//
// Maximum cache size is limited by size param. Optional onEvicted cb is called then some value evicted from cache.
func New[K comparable, V any](size int, onEvicted ...func(K, V)) ICache[K, V] {
	var cb func(K, V)
	if len(onEvicted) > 0 {
		cb = onEvicted[0]
	}
	return hashicorp.New[K, V](size, cb)
}

// Creates and return new unbounded object cache. Values are never evicted.
//
// Used for process-wide memoization where a second fetch of the same key must never happen.
func NewUnbounded[K comparable, V any]() ICache[K, V] {
	return imcache.New[K, V]()
}
