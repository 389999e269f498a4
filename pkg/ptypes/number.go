/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ptypes

import (
	"github.com/shopspring/decimal"
)

// Decimal number
type Number struct {
	primitive
	d decimal.Decimal
}

func NewNumber(d decimal.Decimal) *Number {
	return &Number{primitive: makePrimitive(Kind_Number), d: d}
}

// Parses decimal string, e.g. "9999.99"
func ParseNumber(s string) (*Number, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, ErrTypeMismatch("«%s» is not a number: %v", s, err)
	}
	return NewNumber(d), nil
}

func (v *Number) Read() decimal.Decimal { return v.d }

// Returns integer part of the number
func (v *Number) ReadAsInteger() int64 { return v.d.IntPart() }

func (v *Number) Write(d decimal.Decimal) error {
	if err := v.checkWriteable(v); err != nil {
		return err
	}
	v.set(d)
	return nil
}

func (v *Number) SystemWrite(d decimal.Decimal) error {
	if err := v.checkSystemWriteable(v); err != nil {
		return err
	}
	v.set(d)
	return nil
}

func (v *Number) set(d decimal.Decimal) {
	if !v.d.Equal(d) {
		v.d = d
		v.updated = true
	}
}

func (v *Number) IsBlank() bool { return v.d.IsZero() }

func (v *Number) SetBlank() error { return v.SystemWrite(decimal.Zero) }

func (v *Number) ReadAsString() string { return v.d.String() }

func (v *Number) CopyValueFrom(src IPrimitive) error {
	s, ok := src.(*Number)
	if !ok {
		return ErrTypeMismatch("expected Number source, got %v", src.Kind().TrimString())
	}
	return v.Write(s.d)
}

func (v *Number) Clone() IPrimitive { return NewNumber(v.d) }

func (v *Number) Compare(other IPrimitive) (int, error) {
	switch o := other.(type) {
	case *Number:
		return v.d.Cmp(o.d), nil
	case *Integer:
		return v.d.Cmp(decimal.NewFromInt(o.i)), nil
	}
	return 0, ErrTypeMismatch("Number compared with %v", other.Kind().TrimString())
}

func (v *Number) String() string { return v.ReadAsString() }
