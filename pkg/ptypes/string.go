/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ptypes

import "strings"

type String struct {
	primitive
	s string
}

func NewString(s string) *String {
	return &String{primitive: makePrimitive(Kind_String), s: s}
}

func (v *String) Read() string { return v.s }

func (v *String) Write(s string) error {
	if err := v.checkWriteable(v); err != nil {
		return err
	}
	v.set(s)
	return nil
}

func (v *String) SystemWrite(s string) error {
	if err := v.checkSystemWriteable(v); err != nil {
		return err
	}
	v.set(s)
	return nil
}

func (v *String) set(s string) {
	if v.s != s {
		v.s = s
		v.updated = true
	}
}

// Blank strings are empty or consist of spaces only
func (v *String) IsBlank() bool { return strings.TrimSpace(v.s) == "" }

func (v *String) SetBlank() error { return v.SystemWrite("") }

func (v *String) ReadAsString() string { return v.s }

func (v *String) CopyValueFrom(src IPrimitive) error {
	s, ok := src.(*String)
	if !ok {
		return ErrTypeMismatch("expected String source, got %v", src.Kind().TrimString())
	}
	return v.Write(s.s)
}

func (v *String) Clone() IPrimitive { return NewString(v.s) }

func (v *String) Compare(other IPrimitive) (int, error) {
	switch o := other.(type) {
	case *String:
		return strings.Compare(v.s, o.s), nil
	case *Char:
		return strings.Compare(v.s, string(o.c)), nil
	}
	return 0, ErrTypeMismatch("String compared with %v", other.Kind().TrimString())
}

// Returns new interned string, concatenation of v and other
func (v *String) Concat(other *String) *String {
	return Literals().String(v.s + other.s)
}

func (v *String) String() string { return v.s }
