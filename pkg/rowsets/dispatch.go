/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rowsets

import (
	"context"
	"strings"

	"golang.org/x/text/cases"

	"github.com/voedger/cbuffer/pkg/ptypes"
)

type (
	method[T any]   func(ctx context.Context, o T, args []ptypes.IValue) (ptypes.IValue, error)
	property[T any] func(o T) (ptypes.IValue, error)
)

func fold(name string) string { return cases.Fold().String(name) }

func folded[V any](m map[string]V) map[string]V {
	res := make(map[string]V, len(m))
	for k, v := range m {
		res[fold(k)] = v
	}
	return res
}

func none() (ptypes.IValue, error) { return ptypes.NullValue(), nil }

// Avoids typed nil in returned interface
func object[T ptypes.IValue](v T, err error) (ptypes.IValue, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

func stringArg(v ptypes.IValue) (string, bool) {
	switch a := v.(type) {
	case *ptypes.String:
		return a.Read(), true
	case *ptypes.Char:
		return a.ReadAsString(), true
	}
	return "", false
}

func intArg(v ptypes.IValue) (int, bool) {
	switch a := v.(type) {
	case *ptypes.Integer:
		return int(a.Read()), true
	case *ptypes.Number:
		return int(a.ReadAsInteger()), true
	}
	return 0, false
}

func stringArgs(method string, args []ptypes.IValue, n int) ([]string, error) {
	if len(args) != n {
		return nil, ErrArguments(method, strings.Repeat("string ", n), args)
	}
	res := make([]string, n)
	for i, a := range args {
		s, ok := stringArg(a)
		if !ok {
			return nil, ErrArguments(method, strings.Repeat("string ", n), args)
		}
		res[i] = s
	}
	return res, nil
}

var fieldMethods = folded(map[string]method[*Field]{
	"SetDefault": func(_ context.Context, f *Field, args []ptypes.IValue) (ptypes.IValue, error) {
		if len(args) != 0 {
			return nil, ErrArguments("SetDefault", "no arguments", args)
		}
		return ptypes.NullValue(), f.SetDefault()
	},
	"GetLongLabel": func(_ context.Context, f *Field, args []ptypes.IValue) (ptypes.IValue, error) {
		s, err := stringArgs("GetLongLabel", args, 1)
		if err != nil {
			return nil, err
		}
		return ptypes.NewString(f.LongLabel(s[0])), nil
	},
	"ClearDropDownList": func(_ context.Context, f *Field, args []ptypes.IValue) (ptypes.IValue, error) {
		if len(args) != 0 {
			return nil, ErrArguments("ClearDropDownList", "no arguments", args)
		}
		f.ClearDropDownList()
		return none()
	},
	"AddDropDownItem": func(_ context.Context, f *Field, args []ptypes.IValue) (ptypes.IValue, error) {
		s, err := stringArgs("AddDropDownItem", args, 2)
		if err != nil {
			return nil, err
		}
		f.AddDropDownItem(s[0], s[1])
		return none()
	},
	"GetRelated": func(_ context.Context, f *Field, args []ptypes.IValue) (ptypes.IValue, error) {
		s, err := stringArgs("GetRelated", args, 2)
		if err != nil {
			return nil, err
		}
		return object(f.Related(s[0], s[1]))
	},
})

var fieldProperties = folded(map[string]property[*Field]{
	"Value":       func(f *Field) (ptypes.IValue, error) { return object(f.ValueRef()) },
	"Visible":     func(f *Field) (ptypes.IValue, error) { return f.visible, nil },
	"DisplayOnly": func(f *Field) (ptypes.IValue, error) { return f.displayOnly, nil },
	"Name":        func(f *Field) (ptypes.IValue, error) { return f.name, nil },
})

func (f *Field) CallMethod(ctx context.Context, name string, args ...ptypes.IValue) (ptypes.IValue, error) {
	if m, ok := fieldMethods[fold(name)]; ok {
		return m(ctx, f, args)
	}
	return nil, ErrUnknownMethod(name, f)
}

func (f *Field) Property(name string) (ptypes.IValue, error) {
	if p, ok := fieldProperties[fold(name)]; ok {
		return p(f)
	}
	return nil, ErrUnknownProperty(name, f)
}

var recordMethods = folded(map[string]method[*Record]{
	"GetField": func(_ context.Context, rec *Record, args []ptypes.IValue) (ptypes.IValue, error) {
		if len(args) == 1 {
			if name, ok := stringArg(args[0]); ok {
				if f, ok := rec.Field(name); ok {
					return f, nil
				}
				return nil, ErrUnknownProperty(name, rec)
			}
			if idx, ok := intArg(args[0]); ok {
				return object(rec.FieldByIndex(idx))
			}
		}
		return nil, ErrArguments("GetField", "field name or index", args)
	},
})

var recordProperties = folded(map[string]property[*Record]{
	"Name": func(rec *Record) (ptypes.IValue, error) { return ptypes.Literals().String(rec.defn.Name), nil },
})

func (rec *Record) CallMethod(ctx context.Context, name string, args ...ptypes.IValue) (ptypes.IValue, error) {
	if m, ok := recordMethods[fold(name)]; ok {
		return m(ctx, rec, args)
	}
	return nil, ErrUnknownMethod(name, rec)
}

// Returns built-in property or field with given name
func (rec *Record) Property(name string) (ptypes.IValue, error) {
	if f, ok := rec.byName[name]; ok {
		return f, nil
	}
	if p, ok := recordProperties[fold(name)]; ok {
		return p(rec)
	}
	return nil, ErrUnknownProperty(name, rec)
}

var rowMethods = folded(map[string]method[*Row]{
	"GetRecord": func(_ context.Context, row *Row, args []ptypes.IValue) (ptypes.IValue, error) {
		if len(args) == 1 {
			if name, ok := stringArg(args[0]); ok {
				if rec, ok := row.GetRecord(name); ok {
					return rec, nil
				}
				return nil, ErrUnknownProperty(name, row)
			}
			if idx, ok := intArg(args[0]); ok {
				return object(row.GetRecordByIndex(idx))
			}
		}
		return nil, ErrArguments("GetRecord", "record name or index", args)
	},
	"GetRowset": func(_ context.Context, row *Row, args []ptypes.IValue) (ptypes.IValue, error) {
		s, err := stringArgs("GetRowset", args, 1)
		if err != nil {
			return nil, err
		}
		if rs, ok := row.GetRowset(s[0]); ok {
			return rs, nil
		}
		return nil, ErrUnknownProperty(s[0], row)
	},
})

var rowProperties = folded(map[string]property[*Row]{
	"RecordCount":  func(row *Row) (ptypes.IValue, error) { return ptypes.NewInteger(int64(row.RecordCount())), nil },
	"ParentRowset": func(row *Row) (ptypes.IValue, error) { return row.rowset, nil },
	"Selected":     func(row *Row) (ptypes.IValue, error) { return row.selected, nil },
})

func (row *Row) CallMethod(ctx context.Context, name string, args ...ptypes.IValue) (ptypes.IValue, error) {
	if m, ok := rowMethods[fold(name)]; ok {
		return m(ctx, row, args)
	}
	return nil, ErrUnknownMethod(name, row)
}

// Returns record with given name or built-in property
func (row *Row) Property(name string) (ptypes.IValue, error) {
	if rec, ok := row.byName[name]; ok {
		return rec, nil
	}
	if p, ok := rowProperties[fold(name)]; ok {
		return p(row)
	}
	return nil, ErrUnknownProperty(name, row)
}

var rowsetMethods = folded(map[string]method[*Rowset]{
	"GetRow": func(_ context.Context, rs *Rowset, args []ptypes.IValue) (ptypes.IValue, error) {
		if len(args) == 1 {
			if idx, ok := intArg(args[0]); ok {
				return object(rs.GetRow(idx))
			}
		}
		return nil, ErrArguments("GetRow", "row index", args)
	},
	"Flush": func(_ context.Context, rs *Rowset, args []ptypes.IValue) (ptypes.IValue, error) {
		if len(args) != 0 {
			return nil, ErrArguments("Flush", "no arguments", args)
		}
		return ptypes.NullValue(), rs.Flush()
	},
	"Fill": func(ctx context.Context, rs *Rowset, args []ptypes.IValue) (ptypes.IValue, error) {
		where := " "
		binds := []string{}
		if len(args) > 0 {
			w, ok := stringArg(args[0])
			if !ok {
				return nil, ErrArguments("Fill", "where clause and bind values", args)
			}
			where = w
			for _, a := range args[1:] {
				p, ok := a.(ptypes.IPrimitive)
				if !ok {
					return nil, ErrArguments("Fill", "primitive bind values", args)
				}
				binds = append(binds, p.ReadAsString())
			}
		}
		n, err := rs.Fill(ctx, where, binds...)
		if err != nil {
			return nil, err
		}
		return ptypes.NewInteger(int64(n)), nil
	},
	"Sort": func(_ context.Context, rs *Rowset, args []ptypes.IValue) (ptypes.IValue, error) {
		if len(args) == 0 || len(args)%2 != 0 {
			return nil, ErrArguments("Sort", "pairs of field and order", args)
		}
		keys := make([]SortKey, 0, len(args)/2)
		for i := 0; i < len(args); i += 2 {
			s, err := stringArgs("Sort", args[i:i+2], 2)
			if err != nil {
				return nil, err
			}
			field := s[0]
			if rec, fld, ok := strings.Cut(field, "."); ok {
				if rec != rs.DBRecordName() {
					return nil, ptypes.ErrUnsupported("sort by field of record «%s» other than primary «%s»", rec, rs.DBRecordName())
				}
				field = fld
			}
			order, ok := SortOrderOf(s[1])
			if !ok {
				return nil, ErrArguments("Sort", `order "A" or "D"`, args)
			}
			keys = append(keys, SortKey{Field: field, Order: order})
		}
		return ptypes.NullValue(), rs.Sort(keys...)
	},
})

var rowsetProperties = folded(map[string]property[*Rowset]{
	"ActiveRowCount": func(rs *Rowset) (ptypes.IValue, error) { return ptypes.NewInteger(int64(rs.ActiveRowCount())), nil },
	"DBRecordName":   func(rs *Rowset) (ptypes.IValue, error) { return ptypes.NewString(rs.DBRecordName()), nil },
})

func (rs *Rowset) CallMethod(ctx context.Context, name string, args ...ptypes.IValue) (ptypes.IValue, error) {
	if m, ok := rowsetMethods[fold(name)]; ok {
		return m(ctx, rs, args)
	}
	return nil, ErrUnknownMethod(name, rs)
}

func (rs *Rowset) Property(name string) (ptypes.IValue, error) {
	if p, ok := rowsetProperties[fold(name)]; ok {
		return p(rs)
	}
	return nil, ErrUnknownProperty(name, rs)
}
