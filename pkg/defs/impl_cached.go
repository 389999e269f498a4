/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package defs

import (
	"github.com/voedger/cbuffer/pkg/goutils/logger"
	"github.com/voedger/cbuffer/pkg/objcache"
)

type cachedSource struct {
	src        IDefnSource
	records    objcache.ICache[string, *Record]
	pages      objcache.ICache[string, *Page]
	components objcache.ICache[string, *Component]
}

func (s *cachedSource) Record(name string) (*Record, error) {
	if r, ok := s.records.Get(name); ok {
		return r, nil
	}
	r, err := s.src.Record(name)
	if err != nil {
		return nil, err
	}
	if !r.IsLinked() {
		if err := r.Link(s.Record); err != nil {
			return nil, err
		}
	}
	if logger.IsVerbose() {
		logger.Verbose("cached", r)
	}
	s.records.Put(name, r)
	return r, nil
}

func (s *cachedSource) Page(name string) (*Page, error) {
	if p, ok := s.pages.Get(name); ok {
		return p, nil
	}
	p, err := s.src.Page(name)
	if err != nil {
		return nil, err
	}
	s.pages.Put(name, p)
	return p, nil
}

func (s *cachedSource) Component(name, market string) (*Component, error) {
	if market == "" {
		market = MarketGlobal
	}
	key := componentKey(name, market)
	if c, ok := s.components.Get(key); ok {
		return c, nil
	}
	c, err := s.src.Component(name, market)
	if err != nil {
		return nil, err
	}
	s.components.Put(key, c)
	return c, nil
}
