/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rowsets

import (
	"github.com/voedger/cbuffer/pkg/ptypes"
)

// Sorts rows by fields of primary record. Rows equal by all keys keep their order
func (rs *Rowset) Sort(keys ...SortKey) error {
	if rs.primary == nil {
		return ErrNoPrimaryRecord("Sort")
	}
	idx := make([]int, len(keys))
	for i, k := range keys {
		n := rs.primary.FieldIndex(k.Field)
		if n == 0 {
			return ErrSortField(rs.primary.Name, k.Field)
		}
		idx[i] = n - 1
	}
	s := rowSorter{rec: rs.primary.Name, keys: keys, idx: idx}
	sorted, err := s.sort(rs.rows)
	if err != nil {
		return err
	}
	rs.rows = sorted
	return nil
}

type rowSorter struct {
	rec  string
	keys []SortKey
	idx  []int
}

func (s rowSorter) sort(rows []*Row) ([]*Row, error) {
	if len(rows) < 2 {
		return rows, nil
	}
	mid := len(rows) / 2
	left, err := s.sort(rows[:mid])
	if err != nil {
		return nil, err
	}
	right, err := s.sort(rows[mid:])
	if err != nil {
		return nil, err
	}
	return s.merge(left, right)
}

// Merges sorted halves. On full equality left row goes first
func (s rowSorter) merge(left, right []*Row) ([]*Row, error) {
	merged := make([]*Row, 0, len(left)+len(right))
	l, r := 0, 0
	for l < len(left) && r < len(right) {
		c, err := s.compare(left[l], right[r])
		if err != nil {
			return nil, err
		}
		if c <= 0 {
			merged = append(merged, left[l])
			l++
		} else {
			merged = append(merged, right[r])
			r++
		}
	}
	merged = append(merged, left[l:]...)
	merged = append(merged, right[r:]...)
	return merged, nil
}

// Compares rows by keys in precedence order, descending keys invert the result
func (s rowSorter) compare(a, b *Row) (int, error) {
	ra, rb := a.byName[s.rec], b.byName[s.rec]
	for i, k := range s.keys {
		c, err := ra.fieldList[s.idx[i]].value.Compare(rb.fieldList[s.idx[i]].value)
		if err != nil {
			return 0, ptypes.EnrichError(err, "sort by %s.%s", s.rec, k.Field)
		}
		if c == 0 {
			continue
		}
		if k.Order == SortOrder_Descending {
			c = -c
		}
		return c, nil
	}
	return 0, nil
}
