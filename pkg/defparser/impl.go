/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package defparser

import (
	"io/fs"
	"path"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/voedger/cbuffer/pkg/defs"
	"github.com/voedger/cbuffer/pkg/goutils/iterate"
	"github.com/voedger/cbuffer/pkg/progs"
	"github.com/voedger/cbuffer/pkg/ptypes"
	"github.com/voedger/cbuffer/pkg/stmts"
)

var defsParser = participle.MustBuild[fileAST](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `--.*`},
		{Name: "Int", Pattern: `[-+]?\d+`},
		{Name: "Punct", Pattern: `[;,.()]`},
		{Name: "String", Pattern: `'(\\'|[^'])*'`},
		{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
		{Name: "Whitespace", Pattern: `[ \r\n\t]+`},
	})),
	participle.Elide("Whitespace", "Comment"),
	participle.Unquote("String"),
)

func parseImpl(fileName string, content string) (*fileAST, error) {
	return defsParser.ParseString(fileName, content)
}

func parseFSImpl(fsys fs.FS, dir string) ([]*fileAST, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	asts := make([]*fileAST, 0)
	for _, entry := range entries {
		if entry.IsDir() || strings.ToLower(path.Ext(entry.Name())) != FileExt {
			continue
		}
		fp := path.Join(dir, entry.Name())
		bytes, err := fs.ReadFile(fsys, fp)
		if err != nil {
			return nil, err
		}
		ast, err := parseImpl(fp, string(bytes))
		if err != nil {
			return nil, err
		}
		asts = append(asts, ast)
	}
	return asts, nil
}

type builder struct {
	res        *Result
	records    map[string]*recordStmt
	pages      map[string]*pageStmt
	components map[string]*componentStmt
}

func buildImpl(asts ...*fileAST) (*Result, error) {
	b := &builder{
		res: &Result{
			Defs:     defs.NewMemSource(),
			Programs: progs.NewRegistry(),
			Data:     stmts.NewMemExecutor(),
		},
		records:    make(map[string]*recordStmt),
		pages:      make(map[string]*pageStmt),
		components: make(map[string]*componentStmt),
	}
	// definitions first, then everything referring to them
	for _, ast := range asts {
		for _, s := range ast.Statements {
			var err error
			switch {
			case s.Record != nil:
				err = b.record(s.Record)
			case s.Page != nil:
				err = b.page(s.Page)
			case s.Component != nil:
				err = b.component(s.Component)
			}
			if err != nil {
				return nil, err
			}
		}
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	for _, ast := range asts {
		for _, s := range ast.Statements {
			var err error
			switch {
			case s.Program != nil:
				err = b.program(s.Program)
			case s.Data != nil:
				err = b.data(s.Data)
			}
			if err != nil {
				return nil, err
			}
		}
	}
	return b.res, nil
}

func (b *builder) record(s *recordStmt) error {
	if _, ok := b.records[s.Name]; ok {
		return errorAt(s.Pos, ErrDuplicate("record", s.Name))
	}
	b.records[s.Name] = s

	kind, ok := recordKindByName(s.Kind)
	if !ok {
		return errorAt(s.Pos, ptypes.ErrUnsupported("record kind «%s»", s.Kind))
	}
	rec := defs.NewRecord(s.Name, kind)
	for _, f := range s.Fields {
		if f.SubRecord != "" {
			rec.AddSubRecord(f.SubRecord)
			continue
		}
		k, ok := kindByName(f.Type)
		if !ok {
			return errorAt(f.Pos, ErrUnknownKind(f.Type))
		}
		var flags defs.FieldFlags
		for _, fl := range f.Flags {
			flags |= fieldFlags[fl]
		}
		var def defs.DefaultSource
		if d := f.Default; d != nil {
			if d.Constant != nil {
				def = defs.ConstantDefault(*d.Constant)
			} else {
				def = defs.RecordDefault(d.Record, d.Field)
			}
		}
		labels := make([]defs.FieldLabel, 0, len(f.Labels))
		for _, l := range f.Labels {
			labels = append(labels, defs.FieldLabel{ID: l.ID, Long: l.Long, Short: l.Short, Default: l.Primary})
		}
		rec.AddField(f.Name, k, flags, def, labels...)
	}
	b.res.Defs.AddRecord(rec)
	return nil
}

func (b *builder) page(s *pageStmt) error {
	if _, ok := b.pages[s.Name]; ok {
		return errorAt(s.Pos, ErrDuplicate("page", s.Name))
	}
	b.pages[s.Name] = s

	page := defs.NewPage(s.Name)
	for _, item := range s.Items {
		switch {
		case item.Field != nil:
			f := item.Field
			t := &defs.PageToken{RecName: f.Record, FieldName: f.Field}
			if f.ID != nil {
				t.ID = *f.ID
			}
			for _, o := range f.Options {
				switch o {
				case "DISPLAYONLY":
					t.FieldUse |= defs.FieldUse_DisplayOnly
				case "INVISIBLE":
					t.FieldUse |= defs.FieldUse_Invisible
				case "REQUIRED":
					t.FieldUse |= defs.FieldUse_Required
				case "DISPLAYCONTROL":
					t.Flags = t.Flags.With(defs.TokenFlag_DisplayControl)
				case "LVLDEC":
					t.Flags = t.Flags.With(defs.TokenFlag_ScrollLvlDecrement)
				}
			}
			if f.Related != nil {
				t.Flags = t.Flags.With(defs.TokenFlag_RelatedDisplay)
				t.DispControlID = *f.Related
			}
			page.AddToken(t)
		case item.Scroll != nil:
			page.AddScroll(item.Scroll.Record, item.Scroll.Occurs)
		case item.GroupBox != nil:
			t := &defs.PageToken{Flags: defs.FlagsOf(defs.TokenFlag_GroupBox)}
			if item.GroupBox.LvlDec {
				t.Flags = t.Flags.With(defs.TokenFlag_ScrollLvlDecrement)
			}
			page.AddToken(t)
		case item.SubPage != nil:
			page.AddSubPage(*item.SubPage)
		case item.SecPage != nil:
			page.AddSecPage(*item.SecPage)
		}
	}
	b.res.Defs.AddPage(page)
	return nil
}

func (b *builder) component(s *componentStmt) error {
	c := defs.NewComponent(s.Name, s.Market)
	key := c.Name + "." + c.Market
	if _, ok := b.components[key]; ok {
		return errorAt(s.Pos, ErrDuplicate("component", key))
	}
	b.components[key] = s

	c.SearchRecord = s.Search
	c.AddSearchRecord = s.AddSearch
	if s.Action == "NEW" {
		c.PrimaryAction = defs.PrimaryAction_New
	}
	c.AddPage(s.Pages...)
	b.res.Defs.AddComponent(c)
	return nil
}

func (b *builder) validate() error {
	src := b.res.Defs
	err := iterate.ForEachError(src.Records, func(r *defs.Record) error {
		rec, err := src.Record(r.Name)
		if err == nil {
			_, err = iterate.FindFirstError(iterate.Slice(rec.Fields()), func(f *defs.RecordField) error {
				if f.Default.IsNonConstant() {
					return b.checkField(f.Default.Record, f.Default.Field)
				}
				return nil
			})
		}
		if err != nil {
			return errorAt(b.records[r.Name].Pos, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	err = iterate.ForEachError(src.Pages, func(p *defs.Page) error {
		for i, t := range p.Tokens() {
			var err error
			switch {
			case t.Flags.Contains(defs.TokenFlag_SubPage), t.Flags.Contains(defs.TokenFlag_SecPage):
				_, err = src.Page(t.SubPageName)
			case t.Flags.Contains(defs.TokenFlag_ScrollStart):
				_, err = src.Record(t.PrimaryRecName)
			case t.RecName != "":
				err = b.checkField(t.RecName, t.FieldName)
			}
			if err != nil {
				return errorAt(b.pages[p.Name].Items[i].Pos, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return iterate.ForEachError(src.Components, func(c *defs.Component) error {
		pos := b.components[c.Name+"."+c.Market].Pos
		for _, p := range c.Pages() {
			if _, err := src.Page(p); err != nil {
				return errorAt(pos, err)
			}
		}
		for _, r := range []string{c.SearchRecord, c.AddSearchRecord} {
			if r == "" {
				continue
			}
			if _, err := src.Record(r); err != nil {
				return errorAt(pos, err)
			}
		}
		return nil
	})
}

func (b *builder) checkField(rec, field string) error {
	r, err := b.res.Defs.Record(rec)
	if err != nil {
		return err
	}
	if _, ok := r.Field(field); !ok {
		return defs.ErrFieldNotFound(rec, field)
	}
	return nil
}

func (b *builder) program(s *programStmt) error {
	ev, ok := progs.EventByName(s.Event)
	if !ok {
		return errorAt(s.Pos, ErrUnknownEvent(s.Event))
	}
	if err := b.checkField(s.Record, s.Field); err != nil {
		return errorAt(s.Pos, err)
	}
	key := progs.RecordProgramKey(s.Record, s.Field, ev)
	if c := s.Component; c != nil {
		if _, err := b.res.Defs.Component(c.Name, c.Market); err != nil {
			return errorAt(s.Pos, err)
		}
		key = progs.ComponentProgramKey(c.Name, c.Market, s.Record, s.Field, ev)
	}
	b.res.Programs.Add(progs.NewProgram(key, s.Statements...))
	return nil
}

func (b *builder) data(s *dataStmt) error {
	rec, err := b.res.Defs.Record(s.Record)
	if err != nil {
		return errorAt(s.Pos, err)
	}
	for _, c := range s.Columns {
		if _, ok := rec.Field(c); !ok {
			return errorAt(s.Pos, defs.ErrFieldNotFound(s.Record, c))
		}
	}
	for _, r := range s.Rows {
		if len(r.Values) != len(s.Columns) {
			return errorAt(r.Pos, ErrValuesMismatch(len(s.Columns), len(r.Values)))
		}
		row := make(stmts.Row, len(s.Columns))
		for i, c := range s.Columns {
			row[c] = r.Values[i]
		}
		b.res.Data.AddRow(rec.Table(), row)
	}
	return nil
}

var fieldFlags = map[string]defs.FieldFlags{
	"KEY":       defs.FieldFlag_Key,
	"SEARCHKEY": defs.FieldFlag_SearchKey,
	"DESCKEY":   defs.FieldFlag_DescKey,
	"LISTBOX":   defs.FieldFlag_ListBoxItem,
}

func kindByName(name string) (ptypes.Kind, bool) {
	for k := ptypes.Kind_Boolean; k <= ptypes.Kind_DateTime; k++ {
		if strings.EqualFold(k.TrimString(), name) {
			return k, true
		}
	}
	return 0, false
}

func recordKindByName(name string) (defs.RecordKind, bool) {
	for k := defs.RecordKind_Table; k < defs.RecordKind_count; k++ {
		if strings.EqualFold(k.TrimString(), name) {
			return k, true
		}
	}
	return 0, false
}
