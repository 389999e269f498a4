/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package component

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/voedger/cbuffer/pkg/cbuffer"
	"github.com/voedger/cbuffer/pkg/defs"
	"github.com/voedger/cbuffer/pkg/goutils/logger"
)

type secPageRef struct {
	marker *defs.PageToken
	path   []string
}

// Prefetches definitions of records referenced by pages.
//
// Subpages of all pages are expanded first. Secondary pages are expanded
// afterwards, each in place of its marker, so records are listed in the
// order of the fully expanded page tree
type recordLister struct {
	src      defs.IDefnSource
	ob       *cbuffer.OrderingBuffer
	secPages []secPageRef
}

func listRecords(src defs.IDefnSource, pages []string) ([]string, error) {
	l := &recordLister{src: src}
	l.ob = cbuffer.NewOrderingBuffer(l.prefetch)

	for _, p := range pages {
		if err := l.expand(p, []string{p}); err != nil {
			return nil, err
		}
	}
	for i := 0; i < len(l.secPages); i++ {
		ref := l.secPages[i]
		if err := l.ob.FlushUpTo(ref.marker); err != nil {
			return nil, err
		}
		if err := l.ob.NotifyStartOfExpansion(ref.marker); err != nil {
			return nil, err
		}
		if err := l.expand(ref.marker.SubPageName, ref.path); err != nil {
			return nil, err
		}
		if err := l.ob.NotifyEndOfExpansion(ref.marker); err != nil {
			return nil, err
		}
	}
	if err := l.ob.Flush(); err != nil {
		return nil, err
	}
	return l.ob.Listed(), nil
}

// Queues field tokens and secpage markers of page, subpages are expanded recursively
func (l *recordLister) expand(page string, path []string) error {
	p, err := l.src.Page(page)
	if err != nil {
		return err
	}
	for _, t := range p.Tokens() {
		switch {
		case t.Flags.Contains(defs.TokenFlag_SubPage):
			sub, err := nestedPath(path, t.SubPageName)
			if err != nil {
				return err
			}
			if err := l.expand(t.SubPageName, sub); err != nil {
				return err
			}
		case t.Flags.Contains(defs.TokenFlag_SecPage):
			sub, err := nestedPath(path, t.SubPageName)
			if err != nil {
				return err
			}
			// page may be referenced more than once, every reference is own marker
			m := *t
			l.ob.QueueSecPageMarker(&m)
			l.secPages = append(l.secPages, secPageRef{marker: &m, path: sub})
		case t.BelongsInComponentStructure():
			l.ob.QueueFieldToken(t)
		}
	}
	return nil
}

func (l *recordLister) prefetch(recNames []string) error {
	for _, n := range recNames {
		if _, err := l.src.Record(n); err != nil {
			return err
		}
	}
	if logger.IsTrace() {
		logger.Trace("prefetched", recNames)
	}
	return nil
}

func nestedPath(path []string, page string) ([]string, error) {
	if slices.Contains(path, page) {
		return nil, defs.ErrCyclicNesting("page", strings.Join(append(slices.Clone(path), page), " → "))
	}
	return append(slices.Clone(path), page), nil
}
