/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package defs

import (
	"strings"

	"github.com/voedger/cbuffer/pkg/ptypes"
)

// Record field flags
type FieldFlags uint8

const (
	FieldFlag_Key FieldFlags = 1 << iota
	FieldFlag_SearchKey
	FieldFlag_DescKey
	FieldFlag_ListBoxItem
)

// Field label
type FieldLabel struct {
	ID      string
	Long    string
	Short   string
	Default bool
}

// Default value source of record field
type DefaultSource struct {
	Kind DefaultKind
	// Literal for constant kind, meta-value for meta kind
	Constant string
	// Default record and field for record kind
	Record string
	Field  string
}

func ConstantDefault(literal string) DefaultSource {
	if strings.HasPrefix(literal, MetaValuePrefix) {
		return DefaultSource{Kind: DefaultKind_Meta, Constant: literal}
	}
	return DefaultSource{Kind: DefaultKind_Constant, Constant: literal}
}

func RecordDefault(rec, field string) DefaultSource {
	return DefaultSource{Kind: DefaultKind_Record, Record: rec, Field: field}
}

// Returns is default literal or meta-value
func (d DefaultSource) IsConstant() bool {
	return d.Kind == DefaultKind_Constant || d.Kind == DefaultKind_Meta
}

// Returns is default taken from other record field
func (d DefaultSource) IsNonConstant() bool {
	return d.Kind == DefaultKind_Record && d.Record != "" && d.Field != ""
}

// Record field definition.
//
// Entries with not empty SubRecord are subrecord references and are replaced
// by subrecord fields on expansion
type RecordField struct {
	// True record name, subrecord name for fields originating in subrecord
	RecName   string
	Name      string
	Num       int
	Kind      ptypes.Kind
	Flags     FieldFlags
	Default   DefaultSource
	Labels    []FieldLabel
	SubRecord string
}

func (f *RecordField) IsSubRecord() bool { return f.SubRecord != "" }

func (f *RecordField) IsKey() bool { return f.Flags&FieldFlag_Key != 0 }

func (f *RecordField) IsSearchKey() bool { return f.Flags&FieldFlag_SearchKey != 0 }

func (f *RecordField) IsDescKey() bool { return f.Flags&FieldFlag_DescKey != 0 }

func (f *RecordField) IsListBoxItem() bool { return f.Flags&FieldFlag_ListBoxItem != 0 }

func (f *RecordField) IsEffDtKey() bool { return f.IsKey() && f.Name == EffDtFieldName }

func (f *RecordField) Constraint() ptypes.Constraint { return ptypes.Of(f.Kind) }

// Returns label with specified ID. Empty ID returns default label
func (f *RecordField) Label(id string) (FieldLabel, bool) {
	for _, l := range f.Labels {
		if (id == "" && l.Default) || (id != "" && l.ID == id) {
			return l, true
		}
	}
	return FieldLabel{}, false
}

func (f *RecordField) String() string { return f.RecName + "." + f.Name }

// Record definition
type Record struct {
	Name     string
	Kind     RecordKind
	fields   []*RecordField
	expanded []*RecordField
	byName   map[string]*RecordField
	linked   bool
}

func NewRecord(name string, kind RecordKind) *Record {
	return &Record{Name: name, Kind: kind}
}

// Adds field to record. Field number is assigned by declaration order
func (r *Record) AddField(name string, kind ptypes.Kind, flags FieldFlags, def DefaultSource, labels ...FieldLabel) *Record {
	r.fields = append(r.fields, &RecordField{
		RecName: r.Name,
		Name:    name,
		Num:     len(r.fields) + 1,
		Kind:    kind,
		Flags:   flags,
		Default: def,
		Labels:  labels,
	})
	r.linked = false
	return r
}

// Adds subrecord reference to record
func (r *Record) AddSubRecord(name string) *Record {
	r.fields = append(r.fields, &RecordField{
		RecName:   r.Name,
		Name:      name,
		Num:       len(r.fields) + 1,
		SubRecord: name,
	})
	r.linked = false
	return r
}

// Returns declared fields, including subrecord references
func (r *Record) Fields() []*RecordField { return r.fields }

// Expands subrecord references using resolver.
//
// Subrecord fields are placed in declaration order, depth first.
// Cyclic subrecord nesting is a structural violation. Repeated calls are no-op
func (r *Record) Link(resolver func(name string) (*Record, error)) error {
	if r.linked {
		return nil
	}
	exp, err := r.expand(resolver, []string{r.Name})
	if err != nil {
		return err
	}
	r.expanded = exp
	r.byName = make(map[string]*RecordField, len(exp))
	for _, f := range exp {
		if _, ok := r.byName[f.Name]; !ok {
			r.byName[f.Name] = f
		}
	}
	r.linked = true
	return nil
}

func (r *Record) expand(resolver func(string) (*Record, error), path []string) ([]*RecordField, error) {
	res := make([]*RecordField, 0, len(r.fields))
	for _, f := range r.fields {
		if !f.IsSubRecord() {
			res = append(res, f)
			continue
		}
		for _, p := range path {
			if p == f.SubRecord {
				return nil, ErrCyclicNesting("subrecord", strings.Join(append(path, f.SubRecord), " → "))
			}
		}
		sub, err := resolver(f.SubRecord)
		if err != nil {
			return nil, err
		}
		subFields, err := sub.expand(resolver, append(path, f.SubRecord))
		if err != nil {
			return nil, err
		}
		res = append(res, subFields...)
	}
	return res, nil
}

func (r *Record) IsLinked() bool { return r.linked }

// Returns fields with subrecords expanded.
//
// Panics if record has subrecord references and is not linked
func (r *Record) ExpandedFields() []*RecordField {
	r.mustLinked()
	return r.expanded
}

// Returns field from expanded field set
func (r *Record) Field(name string) (*RecordField, bool) {
	r.mustLinked()
	f, ok := r.byName[name]
	return f, ok
}

// Returns 1-based position of field in expanded field set, 0 if not found
func (r *Record) FieldIndex(name string) int {
	for i, f := range r.ExpandedFields() {
		if f.Name == name {
			return i + 1
		}
	}
	return 0
}

func (r *Record) KeyFields() []*RecordField {
	res := make([]*RecordField, 0)
	for _, f := range r.ExpandedFields() {
		if f.IsKey() {
			res = append(res, f)
		}
	}
	return res
}

func (r *Record) HasAnyKeys() bool {
	for _, f := range r.ExpandedFields() {
		if f.IsKey() {
			return true
		}
	}
	return false
}

// Returns keyed EFFDT field, if any
func (r *Record) EffDtKey() (*RecordField, bool) {
	if f, ok := r.Field(EffDtFieldName); ok && f.IsKey() {
		return f, true
	}
	return nil, false
}

func (r *Record) IsTable() bool { return r.Kind == RecordKind_Table }

func (r *Record) IsView() bool { return r.Kind == RecordKind_View }

// Returns physical table name
func (r *Record) Table() string { return TablePrefix + r.Name }

func (r *Record) String() string { return r.Kind.TrimString() + " «" + r.Name + "»" }

func (r *Record) mustLinked() {
	if r.linked {
		return
	}
	for _, f := range r.fields {
		if f.IsSubRecord() {
			panic(ptypes.ErrStructuralIntegrity("%v is not linked", r))
		}
	}
	// no subrecords, nothing to expand
	if err := r.Link(nil); err != nil {
		panic(err)
	}
}
