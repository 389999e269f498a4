/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package defstore

import (
	"github.com/VictoriaMetrics/fastcache"
	bolt "go.etcd.io/bbolt"

	"github.com/voedger/cbuffer/pkg/goutils/filesu"
)

// Opens or creates definitions store database file
func Open(path string, opts ...Option) (*Store, error) {
	o := options{cacheSize: DefaultCacheSize, openTimeout: DefaultOpenTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	db, err := bolt.Open(path, filesu.FileMode_DefaultForFile, &bolt.Options{Timeout: o.openTimeout})
	if err != nil {
		return nil, err
	}
	if err := initDB(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, cache: fastcache.New(o.cacheSize)}, nil
}
