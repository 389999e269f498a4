/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ptypes

import (
	"fmt"

	"github.com/valyala/bytebufferpool"
)

// Array of values. Items are typed by the array constraint: nested constraint
// for one-dimensional arrays, array of dimension-1 otherwise
type Array struct {
	constraint Constraint
	items      []IValue
	readOnly   bool
	sentinel   bool
}

func newArray(c Constraint) *Array {
	return &Array{constraint: c}
}

func (a *Array) Kind() Kind { return Kind_Array }

func (a *Array) IsReadOnly() bool { return a.readOnly }

// Marks array and all its items read-only
func (a *Array) SetReadOnly() {
	a.readOnly = true
	for _, v := range a.items {
		v.SetReadOnly()
	}
}

func (a *Array) IsSentinel() bool { return a.sentinel }

func (a *Array) Constraint() Constraint { return a.constraint }

func (a *Array) Dimension() int { return a.constraint.dim }

// Returns constraint for array items
func (a *Array) ItemConstraint() Constraint {
	if a.constraint.dim > 1 {
		return ArrayOf(a.constraint.dim-1, *a.constraint.nested)
	}
	return *a.constraint.nested
}

func (a *Array) Len() int { return len(a.items) }

// Returns item by 1-based index
func (a *Array) Get(idx int) (IValue, error) {
	if idx < 1 || idx > len(a.items) {
		return nil, ErrOutOfBounds("index %d, array length is %d", idx, len(a.items))
	}
	return a.items[idx-1], nil
}

// Appends items to the array.
//
// Returns ErrTypeMismatch if item does not satisfy item constraint or array is not writeable
func (a *Array) Push(items ...IValue) error {
	if a.sentinel {
		return ErrSentinelWrite(a)
	}
	if a.readOnly {
		return ErrReadOnlyWrite(a)
	}
	ic := a.ItemConstraint()
	for _, v := range items {
		if !ic.TypeCheck(v) {
			return ErrTypeMismatch("%v item expected, got %v", ic, v.Kind().TrimString())
		}
	}
	a.items = append(a.items, items...)
	return nil
}

func (a *Array) String() string {
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)

	b.WriteString("[")
	for i, v := range a.items {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(b, v)
	}
	b.WriteString("]")
	return b.String()
}
