/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package cbuffer

import (
	"fmt"

	"github.com/voedger/cbuffer/pkg/defs"
	"github.com/voedger/cbuffer/pkg/goutils/logger"
)

// Flattened token stream of one component page
type PageStream struct {
	Page   string
	Tokens []*defs.PageToken
}

type markerOrigin uint8

const (
	markerOrigin_Page markerOrigin = iota
	markerOrigin_ScrollStart
)

type scrollMarker struct {
	primaryRec string
	level      int
	origin     markerOrigin
	// some field was registered while marker was on top
	hasFields bool
}

func (m *scrollMarker) String() string {
	o := "page"
	if m.origin == markerOrigin_ScrollStart {
		o = "scroll"
	}
	return fmt.Sprintf("(%s «%s» %d)", o, m.primaryRec, m.level)
}

type markerStack struct {
	page    string
	markers []*scrollMarker
}

func (s *markerStack) push(m *scrollMarker) {
	s.markers = append(s.markers, m)
	if logger.IsTrace() {
		logger.Trace(s.page, "push", m, "size", len(s.markers))
	}
}

func (s *markerStack) pop(tok *defs.PageToken) error {
	if len(s.markers) == 0 {
		return ErrMarkerStackUnderflow(s.page, tok)
	}
	m := s.markers[len(s.markers)-1]
	s.markers = s.markers[:len(s.markers)-1]
	if logger.IsTrace() {
		logger.Trace(s.page, "pop", m, "size", len(s.markers))
	}
	return nil
}

func (s *markerStack) top(tok *defs.PageToken) (*scrollMarker, error) {
	if len(s.markers) == 0 {
		return nil, ErrMarkerStackUnderflow(s.page, tok)
	}
	return s.markers[len(s.markers)-1], nil
}

// Builds buffer tree from flattened page token streams, one stream per page.
//
// Each stream is processed with its own scroll marker stack, which initially
// holds the root marker. After the stream the root marker, if still present,
// is popped; any other marker left is a structural violation
func (cb *ComponentBuffer) Assemble(pages ...PageStream) error {
	for _, p := range pages {
		if err := cb.assemblePage(p.Page, p.Tokens); err != nil {
			return err
		}
	}
	return nil
}

func (cb *ComponentBuffer) assemblePage(page string, tokens []*defs.PageToken) error {
	stack := &markerStack{page: page}
	stack.push(&scrollMarker{origin: markerOrigin_Page})

	for _, tok := range tokens {
		if err := cb.processToken(stack, tok); err != nil {
			return err
		}
	}

	if len(stack.markers) == 1 && stack.markers[0].origin == markerOrigin_Page && stack.markers[0].level == 0 {
		_ = stack.pop(nil)
	}
	if len(stack.markers) != 0 {
		return ErrMarkerStackNotEmpty(page, len(stack.markers))
	}
	return nil
}

func (cb *ComponentBuffer) processToken(stack *markerStack, tok *defs.PageToken) error {
	if tok.Flags.Contains(defs.TokenFlag_Page) {
		top, err := stack.top(tok)
		if err != nil {
			return err
		}
		stack.push(&scrollMarker{primaryRec: top.primaryRec, level: top.level, origin: markerOrigin_Page})
		return nil
	}

	if tok.Flags.Contains(defs.TokenFlag_EndOfPage) {
		for {
			top, err := stack.top(tok)
			if err != nil {
				return err
			}
			if top.origin != markerOrigin_ScrollStart {
				break
			}
			_ = stack.pop(tok)
		}
		return stack.pop(tok)
	}

	if tok.Flags.Contains(defs.TokenFlag_ScrollStart) {
		top, err := stack.top(tok)
		if err != nil {
			return err
		}
		// scroll opened right after an empty scroll of another record closes it
		if top.origin == markerOrigin_ScrollStart && top.primaryRec != tok.PrimaryRecName && !top.hasFields {
			_ = stack.pop(tok)
			if top, err = stack.top(tok); err != nil {
				return err
			}
		}
		m := &scrollMarker{primaryRec: tok.PrimaryRecName, level: top.level + tok.OccursLevel, origin: markerOrigin_ScrollStart}
		stack.push(m)
		if m.level > 0 {
			if _, err := cb.OpenScroll(m.level, m.primaryRec); err != nil {
				return err
			}
		}
		return nil
	}

	// level decrement may be attached to ordinary field, token processing continues
	if tok.Flags.Contains(defs.TokenFlag_ScrollLvlDecrement) {
		if err := stack.pop(tok); err != nil {
			return err
		}
	}

	if tok.BelongsInComponentStructure() {
		top, err := stack.top(tok)
		if err != nil {
			return err
		}
		top.hasFields = true
		return cb.AddPageField(tok, top.level, top.primaryRec)
	}
	return nil
}
