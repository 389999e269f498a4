/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ptypes

import (
	"unicode/utf8"
)

const blankChar = ' '

// Single character
type Char struct {
	primitive
	c rune
}

func NewChar(c rune) *Char {
	return &Char{primitive: makePrimitive(Kind_Char), c: c}
}

func newBlankChar() *Char { return NewChar(blankChar) }

func (v *Char) Read() rune { return v.c }

func (v *Char) Write(c rune) error {
	if err := v.checkWriteable(v); err != nil {
		return err
	}
	v.set(c)
	return nil
}

// Writes single-character string.
//
// Returns ErrTypeMismatch if string is empty or longer than one character
func (v *Char) WriteString(s string) error {
	if utf8.RuneCountInString(s) != 1 {
		return ErrTypeMismatch("illegal attempt to write «%s» to Char", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return v.Write(r)
}

func (v *Char) SystemWrite(c rune) error {
	if err := v.checkSystemWriteable(v); err != nil {
		return err
	}
	v.set(c)
	return nil
}

func (v *Char) set(c rune) {
	if v.c != c {
		v.c = c
		v.updated = true
	}
}

func (v *Char) IsBlank() bool { return v.c == blankChar || v.c == 0 }

func (v *Char) SetBlank() error { return v.SystemWrite(blankChar) }

func (v *Char) ReadAsString() string { return string(v.c) }

func (v *Char) CopyValueFrom(src IPrimitive) error {
	s, ok := src.(*Char)
	if !ok {
		return ErrTypeMismatch("expected Char source, got %v", src.Kind().TrimString())
	}
	return v.Write(s.c)
}

func (v *Char) Clone() IPrimitive { return NewChar(v.c) }

// Compares with Char, single-character String or Integer digit
func (v *Char) Compare(other IPrimitive) (int, error) {
	switch o := other.(type) {
	case *Char:
		return compareRunes(v.c, o.c), nil
	case *String:
		if utf8.RuneCountInString(o.s) != 1 {
			// never equal to a string of other length
			if o.s == "" {
				return 1, nil
			}
			r, _ := utf8.DecodeRuneInString(o.s)
			if c := compareRunes(v.c, r); c != 0 {
				return c, nil
			}
			return -1, nil
		}
		r, _ := utf8.DecodeRuneInString(o.s)
		return compareRunes(v.c, r), nil
	case *Integer:
		if v.c < '0' || v.c > '9' {
			return 0, ErrTypeMismatch("Char «%c» compared with Integer", v.c)
		}
		d := int64(v.c - '0')
		switch {
		case d < o.i:
			return -1, nil
		case d > o.i:
			return 1, nil
		}
		return 0, nil
	}
	return 0, ErrTypeMismatch("Char compared with %v", other.Kind().TrimString())
}

func (v *Char) String() string { return v.ReadAsString() }

func compareRunes(a, b rune) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
