/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package defs

import (
	"fmt"
	"strings"
)

// Page token structural flag
type TokenFlag uint8

//go:generate stringer -type=TokenFlag -output=tokenflag_string.go

const (
	TokenFlag_GroupBox TokenFlag = iota
	TokenFlag_Page
	TokenFlag_SubPage
	TokenFlag_SecPage
	TokenFlag_ScrollStart
	TokenFlag_ScrollLvlDecrement
	TokenFlag_Generic
	TokenFlag_DisplayControl
	TokenFlag_RelatedDisplay
	TokenFlag_EndOfPage
	TokenFlag_count
)

func (f TokenFlag) TrimString() string {
	const pref = "TokenFlag_"
	return strings.TrimPrefix(f.String(), pref)
}

// Set of token flags
type TokenFlags uint16

func FlagsOf(ff ...TokenFlag) TokenFlags {
	var s TokenFlags
	for _, f := range ff {
		s |= 1 << f
	}
	return s
}

func (s TokenFlags) Contains(f TokenFlag) bool { return s&(1<<f) != 0 }

func (s TokenFlags) With(f TokenFlag) TokenFlags { return s | 1<<f }

func (s TokenFlags) Without(f TokenFlag) TokenFlags { return s &^ (1 << f) }

// Renders flags as "[Page ScrollStart]"
func (s TokenFlags) String() string {
	ss := make([]string, 0, TokenFlag_count)
	for f := TokenFlag(0); f < TokenFlag_count; f++ {
		if s.Contains(f) {
			ss = append(ss, f.TrimString())
		}
	}
	return "[" + strings.Join(ss, " ") + "]"
}

// Field use bits
type FieldUse uint8

const (
	FieldUse_DisplayOnly FieldUse = 1 << iota
	FieldUse_Invisible
	FieldUse_Required
)

func (u FieldUse) Contains(b FieldUse) bool { return u&b == b }

// One structural unit of page flattened field list
type PageToken struct {
	// Unique within page
	ID             int
	RecName        string
	FieldName      string
	SubPageName    string
	PrimaryRecName string
	OccursLevel    int
	FieldUse       FieldUse
	Flags          TokenFlags
	// For related-display tokens, ID of display-control token on the same page
	DispControlID int
	// For display-control tokens, linked related-display tokens
	Related []*PageToken
}

// Returns should token be placed into component buffer
func (t *PageToken) BelongsInComponentStructure() bool {
	for _, f := range []TokenFlag{TokenFlag_GroupBox, TokenFlag_Page, TokenFlag_SubPage, TokenFlag_SecPage, TokenFlag_ScrollStart, TokenFlag_EndOfPage} {
		if t.Flags.Contains(f) {
			return false
		}
	}
	return t.RecName != "" && t.FieldName != ""
}

// Returns related-display token for the specified record field
func (t *PageToken) RelatedField(rec, field string) (*PageToken, bool) {
	for _, r := range t.Related {
		if r.RecName == rec && r.FieldName == field {
			return r, true
		}
	}
	return nil, false
}

func (t *PageToken) String() string {
	switch {
	case t.Flags.Contains(TokenFlag_EndOfPage):
		return "END_OF_PAGE"
	case t.Flags.Contains(TokenFlag_Page), t.Flags.Contains(TokenFlag_SubPage), t.Flags.Contains(TokenFlag_SecPage):
		return fmt.Sprintf("%v «%s»", t.Flags, t.SubPageName)
	case t.Flags.Contains(TokenFlag_ScrollStart):
		return fmt.Sprintf("%v «%s» occurs %d", t.Flags, t.PrimaryRecName, t.OccursLevel)
	}
	return fmt.Sprintf("%v %s.%s", t.Flags, t.RecName, t.FieldName)
}

// Page definition
type Page struct {
	Name   string
	tokens []*PageToken
}

func NewPage(name string) *Page {
	return &Page{Name: name}
}

// Appends token to page. Zero token ID is replaced by token position
func (p *Page) AddToken(t *PageToken) *Page {
	if t.ID == 0 {
		t.ID = len(p.tokens) + 1
	}
	p.tokens = append(p.tokens, t)
	if t.Flags.Contains(TokenFlag_RelatedDisplay) {
		if dc, ok := p.token(t.DispControlID); ok {
			dc.Related = append(dc.Related, t)
		}
	}
	return p
}

// Appends ordinary field token
func (p *Page) AddField(rec, field string, flags ...TokenFlag) *Page {
	return p.AddToken(&PageToken{RecName: rec, FieldName: field, Flags: FlagsOf(flags...)})
}

// Appends scroll start token
func (p *Page) AddScroll(primaryRec string, occursLevel int) *Page {
	return p.AddToken(&PageToken{PrimaryRecName: primaryRec, OccursLevel: occursLevel, Flags: FlagsOf(TokenFlag_ScrollStart)})
}

// Appends subpage reference
func (p *Page) AddSubPage(name string) *Page {
	return p.AddToken(&PageToken{SubPageName: name, Flags: FlagsOf(TokenFlag_SubPage)})
}

// Appends secondary page reference
func (p *Page) AddSecPage(name string) *Page {
	return p.AddToken(&PageToken{SubPageName: name, Flags: FlagsOf(TokenFlag_SecPage)})
}

func (p *Page) Tokens() []*PageToken { return p.tokens }

// Returns names of directly referenced subpages in token order
func (p *Page) SubPages() []string { return p.refs(TokenFlag_SubPage) }

// Returns names of directly referenced secondary pages in token order
func (p *Page) SecPages() []string { return p.refs(TokenFlag_SecPage) }

func (p *Page) refs(f TokenFlag) []string {
	res := make([]string, 0)
	for _, t := range p.tokens {
		if t.Flags.Contains(f) {
			res = append(res, t.SubPageName)
		}
	}
	return res
}

func (p *Page) token(id int) (*PageToken, bool) {
	for _, t := range p.tokens {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

func (p *Page) String() string { return "page «" + p.Name + "»" }
