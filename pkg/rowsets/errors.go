/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rowsets

import (
	"errors"

	"github.com/voedger/cbuffer/pkg/ptypes"
)

// Value of a field out of component buffer is accessed inside buffer-bound record
var ErrIllegalNonBufferAccessError = errors.New("illegal access to field out of component buffer")

func ErrIllegalNonBufferAccess(rec, field string) error {
	return ptypes.EnrichError(ErrIllegalNonBufferAccessError, "%s.%s", rec, field)
}

func ErrRowIndexOutOfBounds(idx, count int) error {
	return ptypes.ErrOutOfBounds("row index %d, rowset has %d rows", idx, count)
}

func ErrRecordIndexOutOfBounds(idx, count int) error {
	return ptypes.ErrOutOfBounds("record index %d, row has %d records", idx, count)
}

func ErrFieldIndexOutOfBounds(idx, count int) error {
	return ptypes.ErrOutOfBounds("field index %d, record has %d fields", idx, count)
}

func ErrDuplicateChildScroll(primaryRec string) error {
	return ptypes.ErrStructuralIntegrity("child scroll «%s» is already registered", primaryRec)
}

func ErrNoPrimaryRecord(op string) error {
	return ptypes.ErrUnsupported("%s on rowset without primary record", op)
}

func ErrSortField(rec, field string) error {
	return ptypes.ErrNotFound("sort field %s.%s", rec, field)
}

func ErrFillColumns(cols, fields int) error {
	return ptypes.ErrStructuralIntegrity("fill query returned %d columns, record has %d fields", cols, fields)
}

func ErrUnexpectedDefault(def string, v ptypes.IPrimitive) error {
	return ptypes.ErrTypeMismatch("unexpected default «%s» for %v value", def, v.Kind().TrimString())
}

func ErrUnknownMethod(name string, on any) error {
	return ptypes.ErrNotFound("method «%s» of %v", name, on)
}

func ErrUnknownProperty(name string, on any) error {
	return ptypes.ErrNotFound("property «%s» of %v", name, on)
}

func ErrArguments(method string, expected string, args []ptypes.IValue) error {
	return ptypes.ErrTypeMismatch("%s expects %s, got %d argument(s)", method, expected, len(args))
}

func ErrNoRelatedToken(f any) error {
	return ptypes.ErrStructuralIntegrity("field %v is not a display control bound to page token", f)
}

func ErrRelatedMismatch(f any) error {
	return ptypes.ErrStructuralIntegrity("resolved related field %v is not bound to related display token", f)
}
