/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package defs

import "strings"

// Returns flattened token stream of the page.
//
// Stream starts with synthetic page token and ends with end-of-page token.
// Each subpage or secondary page reference is replaced in place by the
// reference token flagged as page, the referenced page tokens and an
// end-of-page token. Cyclic page nesting is a structural violation
func TokenStream(src IDefnSource, pageName string) ([]*PageToken, error) {
	p, err := src.Page(pageName)
	if err != nil {
		return nil, err
	}
	res := []*PageToken{{Flags: FlagsOf(TokenFlag_Page), SubPageName: pageName}}
	if res, err = flatten(src, p, res, []string{pageName}); err != nil {
		return nil, err
	}
	return append(res, endOfPage()), nil
}

func flatten(src IDefnSource, p *Page, res []*PageToken, path []string) ([]*PageToken, error) {
	for _, t := range p.Tokens() {
		if !t.Flags.Contains(TokenFlag_SubPage) && !t.Flags.Contains(TokenFlag_SecPage) {
			res = append(res, t)
			continue
		}
		for _, n := range path {
			if n == t.SubPageName {
				return nil, ErrCyclicNesting("page", strings.Join(append(path, n), " → "))
			}
		}
		sub, err := src.Page(t.SubPageName)
		if err != nil {
			return nil, err
		}
		ref := *t
		ref.Flags = ref.Flags.With(TokenFlag_Page)
		res = append(res, &ref)
		if res, err = flatten(src, sub, res, append(path, t.SubPageName)); err != nil {
			return nil, err
		}
		res = append(res, endOfPage())
	}
	return res, nil
}

func endOfPage() *PageToken {
	return &PageToken{Flags: FlagsOf(TokenFlag_EndOfPage)}
}
