/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package cbuffer

import (
	"github.com/voedger/cbuffer/pkg/defs"
)

// Returns new empty component buffer with root scroll at level 0
func New(src defs.IDefnSource) *ComponentBuffer {
	root := newScrollBuffer(src, 0, "", nil)
	return &ComponentBuffer{src: src, root: root, cursor: root}
}

// Returns new ordering buffer. Lister is called with batches of record
// names in order of their first reference
func NewOrderingBuffer(lister func(recNames []string) error) *OrderingBuffer {
	return &OrderingBuffer{lister: lister, listed: make(map[string]bool)}
}
