/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ptypes

type Boolean struct {
	primitive
	b bool
}

func NewBoolean(b bool) *Boolean {
	return &Boolean{primitive: makePrimitive(Kind_Boolean), b: b}
}

func (v *Boolean) Read() bool { return v.b }

func (v *Boolean) Write(b bool) error {
	if err := v.checkWriteable(v); err != nil {
		return err
	}
	v.set(b)
	return nil
}

func (v *Boolean) SystemWrite(b bool) error {
	if err := v.checkSystemWriteable(v); err != nil {
		return err
	}
	v.set(b)
	return nil
}

func (v *Boolean) set(b bool) {
	if v.b != b {
		v.b = b
		v.updated = true
	}
}

func (v *Boolean) IsBlank() bool { return !v.b }

func (v *Boolean) SetBlank() error { return v.SystemWrite(false) }

func (v *Boolean) ReadAsString() string {
	if v.b {
		return "True"
	}
	return "False"
}

func (v *Boolean) CopyValueFrom(src IPrimitive) error {
	s, ok := src.(*Boolean)
	if !ok {
		return ErrTypeMismatch("expected Boolean source, got %v", src.Kind().TrimString())
	}
	return v.Write(s.b)
}

func (v *Boolean) Clone() IPrimitive { return NewBoolean(v.b) }

func (v *Boolean) Compare(other IPrimitive) (int, error) {
	o, ok := other.(*Boolean)
	if !ok {
		return 0, ErrTypeMismatch("Boolean compared with %v", other.Kind().TrimString())
	}
	switch {
	case v.b == o.b:
		return 0, nil
	case v.b:
		return 1, nil
	}
	return -1, nil
}

func (v *Boolean) String() string { return v.ReadAsString() }
