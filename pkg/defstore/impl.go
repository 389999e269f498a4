/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package defstore

import (
	"encoding/json"
	"strings"

	bolt "go.etcd.io/bbolt"

	"github.com/voedger/cbuffer/pkg/defs"
	"github.com/voedger/cbuffer/pkg/goutils/logger"
)

func initDB(db *bolt.DB) error {
	return db.Update(func(tx *bolt.Tx) error {
		for _, b := range []string{recordsBucketName, pagesBucketName, componentsBucketName} {
			if _, err := tx.CreateBucketIfNotExists([]byte(b)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) Close() error {
	s.cache.Reset()
	return s.db.Close()
}

func (s *Store) Record(name string) (*defs.Record, error) {
	var r recordJSON
	ok, err := s.get(recordsBucketName, name, &r)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, defs.ErrRecordNotFound(name)
	}
	rec := defs.NewRecord(r.Name, r.Kind)
	for _, f := range r.Fields {
		if f.SubRecord != "" {
			rec.AddSubRecord(f.SubRecord)
			continue
		}
		var def defs.DefaultSource
		if f.Default != nil {
			def = *f.Default
		}
		rec.AddField(f.Name, f.Kind, f.Flags, def, f.Labels...)
	}
	if err := rec.Link(s.Record); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Store) Page(name string) (*defs.Page, error) {
	var p pageJSON
	ok, err := s.get(pagesBucketName, name, &p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, defs.ErrPageNotFound(name)
	}
	page := defs.NewPage(p.Name)
	for _, t := range p.Tokens {
		page.AddToken(&defs.PageToken{
			ID:             t.ID,
			RecName:        t.RecName,
			FieldName:      t.FieldName,
			SubPageName:    t.SubPageName,
			PrimaryRecName: t.PrimaryRecName,
			OccursLevel:    t.OccursLevel,
			FieldUse:       t.FieldUse,
			Flags:          t.Flags,
			DispControlID:  t.DispControlID,
		})
	}
	return page, nil
}

func (s *Store) Component(name, market string) (*defs.Component, error) {
	if market == "" {
		market = defs.MarketGlobal
	}
	var c componentJSON
	ok, err := s.get(componentsBucketName, componentKey(name, market), &c)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, defs.ErrComponentNotFound(name, market)
	}
	comp := defs.NewComponent(c.Name, c.Market)
	comp.SearchRecord = c.SearchRecord
	comp.AddSearchRecord = c.AddSearchRecord
	comp.PrimaryAction = c.PrimaryAction
	comp.AddPage(c.Pages...)
	return comp, nil
}

// Reads value from cache or from bbolt bucket and decodes it into v
func (s *Store) get(bucket, key string, v any) (ok bool, err error) {
	ck := cacheKey(bucket, key)
	data, ok := s.cache.HasGet(nil, ck)
	if !ok {
		err = s.db.View(func(tx *bolt.Tx) error {
			b := tx.Bucket([]byte(bucket))
			if b == nil {
				return ErrBucketNotFound
			}
			if d := b.Get([]byte(key)); d != nil {
				// bbolt values are valid only inside transaction
				data = append([]byte(nil), d...)
				ok = true
			}
			return nil
		})
		if err != nil || !ok {
			return false, err
		}
		s.reads++
		s.cache.Set(ck, data)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, errDecode(bucket, key, err)
	}
	return true, nil
}

// Copies components with all pages and records they refer to from src into store.
//
// Names are component names, optionally followed by ".MARKET"
func (s *Store) Import(src defs.IDefnSource, names ...string) error {
	imp := newImporter(src)
	for _, n := range names {
		name, market, _ := strings.Cut(n, ".")
		if err := imp.component(name, market); err != nil {
			return err
		}
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		for _, item := range imp.items {
			b := tx.Bucket([]byte(item.bucket))
			if b == nil {
				return ErrBucketNotFound
			}
			if err := b.Put([]byte(item.key), item.value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	for _, item := range imp.items {
		s.cache.Del(cacheKey(item.bucket, item.key))
	}
	if logger.IsVerbose() {
		logger.Verbose("imported", len(imp.items), "definitions for", strings.Join(names, ", "))
	}
	return nil
}

type importItem struct {
	bucket, key string
	value       []byte
}

type importer struct {
	src   defs.IDefnSource
	seen  map[string]bool
	items []importItem
}

func newImporter(src defs.IDefnSource) *importer {
	return &importer{src: src, seen: make(map[string]bool)}
}

// Returns true if item was not visited yet
func (imp *importer) visit(bucket, key string) bool {
	k := string(cacheKey(bucket, key))
	if imp.seen[k] {
		return false
	}
	imp.seen[k] = true
	return true
}

func (imp *importer) put(bucket, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	imp.items = append(imp.items, importItem{bucket, key, data})
	return nil
}

func (imp *importer) component(name, market string) error {
	c, err := imp.src.Component(name, market)
	if err != nil {
		return err
	}
	key := componentKey(c.Name, c.Market)
	if !imp.visit(componentsBucketName, key) {
		return nil
	}
	for _, r := range []string{c.SearchRecord, c.AddSearchRecord} {
		if r == "" {
			continue
		}
		if err := imp.record(r); err != nil {
			return err
		}
	}
	for _, p := range c.Pages() {
		if err := imp.page(p); err != nil {
			return err
		}
	}
	return imp.put(componentsBucketName, key, componentJSON{
		Name:            c.Name,
		Market:          c.Market,
		SearchRecord:    c.SearchRecord,
		AddSearchRecord: c.AddSearchRecord,
		PrimaryAction:   c.PrimaryAction,
		Pages:           c.Pages(),
	})
}

func (imp *importer) page(name string) error {
	if !imp.visit(pagesBucketName, name) {
		return nil
	}
	p, err := imp.src.Page(name)
	if err != nil {
		return err
	}
	pj := pageJSON{Name: p.Name, Tokens: make([]tokenJSON, 0, len(p.Tokens()))}
	for _, t := range p.Tokens() {
		var err error
		switch {
		case t.SubPageName != "":
			err = imp.page(t.SubPageName)
		case t.PrimaryRecName != "":
			err = imp.record(t.PrimaryRecName)
		case t.RecName != "":
			err = imp.record(t.RecName)
		}
		if err != nil {
			return err
		}
		pj.Tokens = append(pj.Tokens, tokenJSON{
			ID:             t.ID,
			RecName:        t.RecName,
			FieldName:      t.FieldName,
			SubPageName:    t.SubPageName,
			PrimaryRecName: t.PrimaryRecName,
			OccursLevel:    t.OccursLevel,
			FieldUse:       t.FieldUse,
			Flags:          t.Flags,
			DispControlID:  t.DispControlID,
		})
	}
	return imp.put(pagesBucketName, name, pj)
}

func (imp *importer) record(name string) error {
	if !imp.visit(recordsBucketName, name) {
		return nil
	}
	r, err := imp.src.Record(name)
	if err != nil {
		return err
	}
	rj := recordJSON{Name: r.Name, Kind: r.Kind, Fields: make([]fieldJSON, 0, len(r.Fields()))}
	for _, f := range r.Fields() {
		fj := fieldJSON{Name: f.Name, SubRecord: f.SubRecord}
		if f.IsSubRecord() {
			if err := imp.record(f.SubRecord); err != nil {
				return err
			}
		} else {
			fj.Kind, fj.Flags, fj.Labels = f.Kind, f.Flags, f.Labels
			if f.Default.Kind != defs.DefaultKind_None {
				def := f.Default
				fj.Default = &def
			}
			if f.Default.IsNonConstant() {
				if err := imp.record(f.Default.Record); err != nil {
					return err
				}
			}
		}
		rj.Fields = append(rj.Fields, fj)
	}
	return imp.put(recordsBucketName, name, rj)
}

func componentKey(name, market string) string { return name + "." + market }

func cacheKey(bucket, key string) []byte { return []byte(bucket + "/" + key) }
