/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package defstore

import (
	"time"

	"github.com/VictoriaMetrics/fastcache"
	bolt "go.etcd.io/bbolt"

	"github.com/voedger/cbuffer/pkg/defs"
	"github.com/voedger/cbuffer/pkg/ptypes"
)

// Persisted definitions store.
//
// Every call decodes a fresh definition, wrap store with defs.NewCachedSource
// to share definitions between callers
type Store struct {
	db    *bolt.DB
	cache *fastcache.Cache
	// bbolt reads, cache misses
	reads int
}

type options struct {
	cacheSize   int
	openTimeout time.Duration
}

type Option func(*options)

// Sets fastcache size in bytes
func WithCacheSize(size int) Option {
	return func(o *options) { o.cacheSize = size }
}

// Sets timeout to obtain file lock on open
func WithOpenTimeout(d time.Duration) Option {
	return func(o *options) { o.openTimeout = d }
}

type fieldJSON struct {
	Name      string              `json:"name"`
	Kind      ptypes.Kind         `json:"kind,omitempty"`
	Flags     defs.FieldFlags     `json:"flags,omitempty"`
	Default   *defs.DefaultSource `json:"default,omitempty"`
	Labels    []defs.FieldLabel   `json:"labels,omitempty"`
	SubRecord string              `json:"subRecord,omitempty"`
}

type recordJSON struct {
	Name   string          `json:"name"`
	Kind   defs.RecordKind `json:"kind"`
	Fields []fieldJSON     `json:"fields"`
}

type tokenJSON struct {
	ID             int             `json:"id"`
	RecName        string          `json:"rec,omitempty"`
	FieldName      string          `json:"field,omitempty"`
	SubPageName    string          `json:"subPage,omitempty"`
	PrimaryRecName string          `json:"primaryRec,omitempty"`
	OccursLevel    int             `json:"occurs,omitempty"`
	FieldUse       defs.FieldUse   `json:"use,omitempty"`
	Flags          defs.TokenFlags `json:"flags,omitempty"`
	DispControlID  int             `json:"dispControl,omitempty"`
}

type pageJSON struct {
	Name   string      `json:"name"`
	Tokens []tokenJSON `json:"tokens"`
}

type componentJSON struct {
	Name            string             `json:"name"`
	Market          string             `json:"market"`
	SearchRecord    string             `json:"search,omitempty"`
	AddSearchRecord string             `json:"addSearch,omitempty"`
	PrimaryAction   defs.PrimaryAction `json:"action"`
	Pages           []string           `json:"pages"`
}
