/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ptypes

import (
	"time"

	"github.com/voedger/cbuffer/pkg/goutils/timeu"
)

// Calendar date. Zero time is blank
type Date struct {
	primitive
	d time.Time
}

func NewDate(d time.Time) *Date {
	v := &Date{primitive: makePrimitive(Kind_Date)}
	v.d = dateOf(d)
	return v
}

// Parses date in YYYY-MM-DD layout
func ParseDate(s string) (*Date, error) {
	d, err := time.Parse(timeu.DateLayout, s)
	if err != nil {
		return nil, ErrTypeMismatch("«%s» is not a date: %v", s, err)
	}
	return NewDate(d), nil
}

func (v *Date) Read() time.Time { return v.d }

func (v *Date) Write(d time.Time) error {
	if err := v.checkWriteable(v); err != nil {
		return err
	}
	v.set(dateOf(d))
	return nil
}

func (v *Date) SystemWrite(d time.Time) error {
	if err := v.checkSystemWriteable(v); err != nil {
		return err
	}
	v.set(dateOf(d))
	return nil
}

// Writes current date of the clock, resolves %date meta-value
func (v *Date) WriteSysDate(clock timeu.ITime) error {
	return v.Write(timeu.Today(clock))
}

func (v *Date) set(d time.Time) {
	if !v.d.Equal(d) {
		v.d = d
		v.updated = true
	}
}

func (v *Date) IsBlank() bool { return v.d.IsZero() }

func (v *Date) SetBlank() error { return v.SystemWrite(time.Time{}) }

func (v *Date) ReadAsString() string {
	if v.IsBlank() {
		return ""
	}
	return v.d.Format(timeu.DateLayout)
}

func (v *Date) CopyValueFrom(src IPrimitive) error {
	s, ok := src.(*Date)
	if !ok {
		return ErrTypeMismatch("expected Date source, got %v", src.Kind().TrimString())
	}
	return v.Write(s.d)
}

func (v *Date) Clone() IPrimitive { return NewDate(v.d) }

func (v *Date) Compare(other IPrimitive) (int, error) {
	o, ok := other.(*Date)
	if !ok {
		return 0, ErrTypeMismatch("Date compared with %v", other.Kind().TrimString())
	}
	return v.d.Compare(o.d), nil
}

func (v *Date) String() string { return v.ReadAsString() }

func dateOf(d time.Time) time.Time {
	if d.IsZero() {
		return d
	}
	return timeu.Date(d)
}

// Date and time. Zero time is blank
type DateTime struct {
	primitive
	t time.Time
}

func NewDateTime(t time.Time) *DateTime {
	return &DateTime{primitive: makePrimitive(Kind_DateTime), t: t}
}

func (v *DateTime) Read() time.Time { return v.t }

func (v *DateTime) Write(t time.Time) error {
	if err := v.checkWriteable(v); err != nil {
		return err
	}
	v.set(t)
	return nil
}

func (v *DateTime) SystemWrite(t time.Time) error {
	if err := v.checkSystemWriteable(v); err != nil {
		return err
	}
	v.set(t)
	return nil
}

// Writes current date (midnight) of the clock, resolves %date meta-value
func (v *DateTime) WriteSysDate(clock timeu.ITime) error {
	return v.Write(timeu.Today(clock))
}

func (v *DateTime) set(t time.Time) {
	if !v.t.Equal(t) {
		v.t = t
		v.updated = true
	}
}

func (v *DateTime) IsBlank() bool { return v.t.IsZero() }

func (v *DateTime) SetBlank() error { return v.SystemWrite(time.Time{}) }

func (v *DateTime) ReadAsString() string {
	if v.IsBlank() {
		return ""
	}
	return v.t.Format(timeu.DateTimeLayout)
}

func (v *DateTime) CopyValueFrom(src IPrimitive) error {
	s, ok := src.(*DateTime)
	if !ok {
		return ErrTypeMismatch("expected DateTime source, got %v", src.Kind().TrimString())
	}
	return v.Write(s.t)
}

func (v *DateTime) Clone() IPrimitive { return NewDateTime(v.t) }

func (v *DateTime) Compare(other IPrimitive) (int, error) {
	o, ok := other.(*DateTime)
	if !ok {
		return 0, ErrTypeMismatch("DateTime compared with %v", other.Kind().TrimString())
	}
	return v.t.Compare(o.t), nil
}

func (v *DateTime) String() string { return v.ReadAsString() }
