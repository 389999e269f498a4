/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package ptypes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Type constraint: factory and validator for one value variant.
//
// Array constraints also require dimension and nested constraint
type Constraint struct {
	kind   Kind
	dim    int
	nested *Constraint
}

var (
	AnyConstraint      = Constraint{kind: Kind_Any}
	BooleanConstraint  = Constraint{kind: Kind_Boolean}
	IntegerConstraint  = Constraint{kind: Kind_Integer}
	NumberConstraint   = Constraint{kind: Kind_Number}
	StringConstraint   = Constraint{kind: Kind_String}
	CharConstraint     = Constraint{kind: Kind_Char}
	DateConstraint     = Constraint{kind: Kind_Date}
	DateTimeConstraint = Constraint{kind: Kind_DateTime}
)

// Returns constraint for not array kind.
//
// Panics if kind is array
func Of(k Kind) Constraint {
	if k == Kind_Array {
		panic(ErrUnsupported("array constraint requires dimension, use ArrayOf"))
	}
	return Constraint{kind: k}
}

// Returns array constraint with dimension and nested constraint.
//
// Panics if dimension is less than one or nested is array constraint
func ArrayOf(dim int, nested Constraint) Constraint {
	if dim < 1 {
		panic(ErrOutOfBounds("array dimension %d", dim))
	}
	if nested.kind == Kind_Array {
		panic(ErrUnsupported("nested array constraint, increase dimension instead"))
	}
	n := nested
	return Constraint{kind: Kind_Array, dim: dim, nested: &n}
}

func (c Constraint) Kind() Kind { return c.kind }

// Returns array dimension. Zero for not arrays
func (c Constraint) Dimension() int { return c.dim }

// Returns nested constraint for arrays
func (c Constraint) Nested() (Constraint, bool) {
	if c.nested == nil {
		return Constraint{}, false
	}
	return *c.nested, true
}

// Returns new default-initialized value of the constraint variant.
//
// Any constraint allocates null singleton.
// Object variants are allocated by their owners, ErrUnsupported is returned
func (c Constraint) Alloc() (IValue, error) {
	switch c.kind {
	case Kind_Boolean:
		return NewBoolean(false), nil
	case Kind_Integer:
		return NewInteger(0), nil
	case Kind_Number:
		return NewNumber(decimal.Zero), nil
	case Kind_String:
		return NewString(""), nil
	case Kind_Char:
		return newBlankChar(), nil
	case Kind_Date:
		return &Date{primitive: makePrimitive(Kind_Date)}, nil
	case Kind_DateTime:
		return &DateTime{primitive: makePrimitive(Kind_DateTime)}, nil
	case Kind_Any:
		return NullValue(), nil
	case Kind_Array:
		return newArray(c), nil
	}
	return nil, ErrUnsupported("allocation of %v", c)
}

// Allocates primitive value.
//
// Panics if constraint is not primitive
func (c Constraint) AllocPrimitive() IPrimitive {
	if !c.kind.IsPrimitive() {
		panic(ErrTypeMismatch("%v is not primitive", c))
	}
	v, _ := c.Alloc()
	return v.(IPrimitive)
}

// Returns is value structurally compatible with constraint
func (c Constraint) TypeCheck(v IValue) bool {
	if v == nil {
		return false
	}
	switch c.kind {
	case Kind_Any:
		return true
	case Kind_Array:
		if v.Kind() == Kind_Any {
			return true
		}
		a, ok := v.(*Array)
		return ok && c.Equal(a.constraint)
	}
	return v.Kind() == c.kind
}

// Returns is constraints deeply equal
func (c Constraint) Equal(o Constraint) bool {
	if c.kind != o.kind || c.dim != o.dim {
		return false
	}
	if (c.nested == nil) != (o.nested == nil) {
		return false
	}
	if c.nested == nil {
		return true
	}
	return c.nested.Equal(*o.nested)
}

// Returns sentinel cache key, derived from kind and array parameters
func (c Constraint) cacheKey() string {
	if c.kind != Kind_Array {
		return c.kind.TrimString()
	}
	return c.kind.TrimString() + ":" + strconv.Itoa(c.dim) + ":" + c.nested.cacheKey()
}

func (c Constraint) String() string {
	if c.kind != Kind_Array {
		return fmt.Sprintf("%s constraint", c.kind.TrimString())
	}
	return fmt.Sprintf("Array%s of %s", strings.Repeat("[]", c.dim), c.nested.kind.TrimString())
}
