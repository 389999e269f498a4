/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package cbuffer

import (
	"golang.org/x/exp/slices"

	"github.com/voedger/cbuffer/pkg/defs"
	"github.com/voedger/cbuffer/pkg/goutils/logger"
)

type expansion struct {
	marker *defs.PageToken
	// queue position for tokens queued while expanding marker
	pos int
}

// Secondary page ordering buffer.
//
// Keeps field tokens and secpage markers in the order of the fully expanded
// page tree. Secpage contents queued during marker expansion are inserted in
// place of the marker, not at the queue tail. Flushing passes record names to
// lister, each name once, in order of first reference
type OrderingBuffer struct {
	lister     func(recNames []string) error
	queue      []*defs.PageToken
	expansions []*expansion
	listed     map[string]bool
	order      []string
}

func (ob *OrderingBuffer) QueueFieldToken(tok *defs.PageToken) {
	ob.insert(tok)
}

func (ob *OrderingBuffer) QueueSecPageMarker(marker *defs.PageToken) {
	ob.insert(marker)
}

func (ob *OrderingBuffer) insert(tok *defs.PageToken) {
	if len(ob.expansions) == 0 {
		ob.queue = append(ob.queue, tok)
		return
	}
	at := ob.expansions[len(ob.expansions)-1].pos
	ob.queue = slices.Insert(ob.queue, at, tok)
	for _, e := range ob.expansions {
		if e.pos >= at {
			e.pos++
		}
	}
}

// Starts in-place expansion of queued marker
func (ob *OrderingBuffer) NotifyStartOfExpansion(marker *defs.PageToken) error {
	idx := ob.indexOf(marker)
	if idx < 0 {
		return ErrUnknownMarker(marker)
	}
	ob.expansions = append(ob.expansions, &expansion{marker: marker, pos: idx + 1})
	return nil
}

// Lists records of field tokens queued before marker
func (ob *OrderingBuffer) FlushUpTo(marker *defs.PageToken) error {
	idx := ob.indexOf(marker)
	if idx < 0 {
		return ErrUnknownMarker(marker)
	}
	return ob.flush(idx)
}

// Finishes expansion of marker, which must be the innermost expansion
func (ob *OrderingBuffer) NotifyEndOfExpansion(marker *defs.PageToken) error {
	if len(ob.expansions) == 0 {
		return ErrExpansionMismatch(nil, marker)
	}
	top := ob.expansions[len(ob.expansions)-1]
	if top.marker != marker {
		return ErrExpansionMismatch(top.marker, marker)
	}
	ob.expansions = ob.expansions[:len(ob.expansions)-1]
	return nil
}

// Lists records of all queued field tokens
func (ob *OrderingBuffer) Flush() error {
	return ob.flush(len(ob.queue))
}

// Returns all listed record names in listing order
func (ob *OrderingBuffer) Listed() []string { return ob.order }

func (ob *OrderingBuffer) flush(upTo int) error {
	batch := make([]string, 0)
	for _, tok := range ob.queue[:upTo] {
		if tok.Flags.Contains(defs.TokenFlag_SecPage) {
			continue
		}
		if !ob.listed[tok.RecName] {
			ob.listed[tok.RecName] = true
			batch = append(batch, tok.RecName)
		}
	}
	ob.queue = slices.Delete(ob.queue, 0, upTo)
	for _, e := range ob.expansions {
		if e.pos > upTo {
			e.pos -= upTo
		} else {
			e.pos = 0
		}
	}
	if len(batch) == 0 {
		return nil
	}
	ob.order = append(ob.order, batch...)
	if logger.IsVerbose() {
		logger.Verbose("record listing", batch)
	}
	return ob.lister(batch)
}

func (ob *OrderingBuffer) indexOf(marker *defs.PageToken) int {
	return slices.Index(ob.queue, marker)
}
