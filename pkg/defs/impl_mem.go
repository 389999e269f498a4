/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package defs

// In-memory definitions source
type MemSource struct {
	records    map[string]*Record
	pages      map[string]*Page
	components map[string]*Component
}

func NewMemSource() *MemSource {
	return &MemSource{
		records:    make(map[string]*Record),
		pages:      make(map[string]*Page),
		components: make(map[string]*Component),
	}
}

// Adds record. Record is linked on first Record() call
func (s *MemSource) AddRecord(r *Record) *MemSource {
	s.records[r.Name] = r
	return s
}

func (s *MemSource) AddPage(p *Page) *MemSource {
	s.pages[p.Name] = p
	return s
}

func (s *MemSource) AddComponent(c *Component) *MemSource {
	s.components[componentKey(c.Name, c.Market)] = c
	return s
}

func (s *MemSource) Record(name string) (*Record, error) {
	r, ok := s.records[name]
	if !ok {
		return nil, ErrRecordNotFound(name)
	}
	if err := r.Link(s.Record); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *MemSource) Page(name string) (*Page, error) {
	if p, ok := s.pages[name]; ok {
		return p, nil
	}
	return nil, ErrPageNotFound(name)
}

func (s *MemSource) Component(name, market string) (*Component, error) {
	if market == "" {
		market = MarketGlobal
	}
	if c, ok := s.components[componentKey(name, market)]; ok {
		return c, nil
	}
	return nil, ErrComponentNotFound(name, market)
}

// Enumerates all records, pages and components
func (s *MemSource) Records(cb func(*Record)) {
	for _, r := range s.records {
		cb(r)
	}
}

func (s *MemSource) Pages(cb func(*Page)) {
	for _, p := range s.pages {
		cb(p)
	}
}

func (s *MemSource) Components(cb func(*Component)) {
	for _, c := range s.components {
		cb(c)
	}
}

func componentKey(name, market string) string { return name + "." + market }
