/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ptypes

import (
	"strconv"

	"github.com/shopspring/decimal"
)

type Integer struct {
	primitive
	i int64
}

func NewInteger(i int64) *Integer {
	return &Integer{primitive: makePrimitive(Kind_Integer), i: i}
}

func (v *Integer) Read() int64 { return v.i }

func (v *Integer) Write(i int64) error {
	if err := v.checkWriteable(v); err != nil {
		return err
	}
	v.set(i)
	return nil
}

func (v *Integer) SystemWrite(i int64) error {
	if err := v.checkSystemWriteable(v); err != nil {
		return err
	}
	v.set(i)
	return nil
}

func (v *Integer) set(i int64) {
	if v.i != i {
		v.i = i
		v.updated = true
	}
}

func (v *Integer) IsBlank() bool { return v.i == 0 }

func (v *Integer) SetBlank() error { return v.SystemWrite(0) }

func (v *Integer) ReadAsString() string { return strconv.FormatInt(v.i, 10) }

func (v *Integer) CopyValueFrom(src IPrimitive) error {
	s, ok := src.(*Integer)
	if !ok {
		return ErrTypeMismatch("expected Integer source, got %v", src.Kind().TrimString())
	}
	return v.Write(s.i)
}

func (v *Integer) Clone() IPrimitive { return NewInteger(v.i) }

func (v *Integer) Compare(other IPrimitive) (int, error) {
	switch o := other.(type) {
	case *Integer:
		switch {
		case v.i < o.i:
			return -1, nil
		case v.i > o.i:
			return 1, nil
		}
		return 0, nil
	case *Number:
		return decimal.NewFromInt(v.i).Cmp(o.d), nil
	}
	return 0, ErrTypeMismatch("Integer compared with %v", other.Kind().TrimString())
}

func (v *Integer) String() string { return v.ReadAsString() }
