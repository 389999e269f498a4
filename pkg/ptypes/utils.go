/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ptypes

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/voedger/cbuffer/pkg/goutils/timeu"
)

// Parses string representation and writes it to the primitive using system write.
//
// Empty string blanks the value. Used to read database columns into fields
func SystemWriteString(p IPrimitive, s string) error {
	if s == "" {
		return p.SetBlank()
	}
	switch v := p.(type) {
	case *String:
		return v.SystemWrite(s)
	case *Char:
		r := []rune(s)
		if len(r) != 1 {
			return ErrTypeMismatch("illegal attempt to write «%s» to Char", s)
		}
		return v.SystemWrite(r[0])
	case *Boolean:
		b, err := parseBool(s)
		if err != nil {
			return err
		}
		return v.SystemWrite(b)
	case *Integer:
		i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return ErrTypeMismatch("«%s» is not an integer: %v", s, err)
		}
		return v.SystemWrite(i)
	case *Number:
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return ErrTypeMismatch("«%s» is not a number: %v", s, err)
		}
		return v.SystemWrite(d)
	case *Date:
		d, err := time.Parse(timeu.DateLayout, s)
		if err != nil {
			return ErrTypeMismatch("«%s» is not a date: %v", s, err)
		}
		return v.SystemWrite(d)
	case *DateTime:
		t, err := time.Parse(timeu.DateTimeLayout, s)
		if err != nil {
			return ErrTypeMismatch("«%s» is not a date-time: %v", s, err)
		}
		return v.SystemWrite(t)
	}
	return ErrUnsupported("string write to %v", p.Kind().TrimString())
}

func parseBool(s string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "Y", "TRUE", "1":
		return true, nil
	case "N", "FALSE", "0":
		return false, nil
	}
	return false, ErrTypeMismatch("«%s» is not a boolean", s)
}

// Returns is value a blank primitive. Not primitives are never blank
func IsBlank(v IValue) bool {
	if p, ok := v.(IPrimitive); ok {
		return p.IsBlank()
	}
	return false
}
