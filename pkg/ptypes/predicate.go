/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package ptypes

import "strings"

// Ordering predicate
type Predicate uint8

//go:generate stringer -type=Predicate -output=predicate_string.go

const (
	Predicate_null Predicate = iota
	Predicate_Equal
	Predicate_GreaterThan
	Predicate_GreaterThanOrEqual
	Predicate_LessThan
	Predicate_LessThanOrEqual
	Predicate_count
)

func (p Predicate) TrimString() string {
	const pref = "Predicate_"
	return strings.TrimPrefix(p.String(), pref)
}

// Predicates each variant implements. A predicate missing here fails with ErrUnsupported
var supportedPredicates = map[Kind]map[Predicate]bool{
	Kind_Boolean: {
		Predicate_Equal: true,
	},
	Kind_Integer: {
		Predicate_Equal:           true,
		Predicate_GreaterThan:     true,
		Predicate_LessThan:        true,
		Predicate_LessThanOrEqual: true,
	},
	Kind_Number: {
		Predicate_Equal:              true,
		Predicate_GreaterThan:        true,
		Predicate_GreaterThanOrEqual: true,
		Predicate_LessThan:           true,
		Predicate_LessThanOrEqual:    true,
	},
	Kind_String: {
		Predicate_Equal:       true,
		Predicate_GreaterThan: true,
		Predicate_LessThan:    true,
	},
	Kind_Char: {
		Predicate_Equal:       true,
		Predicate_GreaterThan: true,
		Predicate_LessThan:    true,
	},
	Kind_Date: {
		Predicate_Equal:              true,
		Predicate_GreaterThan:        true,
		Predicate_GreaterThanOrEqual: true,
		Predicate_LessThan:           true,
		Predicate_LessThanOrEqual:    true,
	},
	Kind_DateTime: {
		Predicate_GreaterThanOrEqual: true,
		Predicate_LessThanOrEqual:    true,
	},
}

// Returns is predicate implemented for the kind
func IsPredicateSupported(k Kind, p Predicate) bool {
	return supportedPredicates[k][p]
}

func evaluate(p Predicate, a, b IPrimitive) (bool, error) {
	if !IsPredicateSupported(a.Kind(), p) {
		return false, ErrUnsupported("%v for %v", p.TrimString(), a.Kind().TrimString())
	}
	c, err := a.Compare(b)
	if err != nil {
		return false, err
	}
	switch p {
	case Predicate_Equal:
		return c == 0, nil
	case Predicate_GreaterThan:
		return c > 0, nil
	case Predicate_GreaterThanOrEqual:
		return c >= 0, nil
	case Predicate_LessThan:
		return c < 0, nil
	case Predicate_LessThanOrEqual:
		return c <= 0, nil
	}
	return false, ErrUnsupported("predicate %v", p)
}

func IsEqual(a, b IPrimitive) (bool, error) {
	return evaluate(Predicate_Equal, a, b)
}

func IsGreaterThan(a, b IPrimitive) (bool, error) {
	return evaluate(Predicate_GreaterThan, a, b)
}

func IsGreaterThanOrEqual(a, b IPrimitive) (bool, error) {
	return evaluate(Predicate_GreaterThanOrEqual, a, b)
}

func IsLessThan(a, b IPrimitive) (bool, error) {
	return evaluate(Predicate_LessThan, a, b)
}

func IsLessThanOrEqual(a, b IPrimitive) (bool, error) {
	return evaluate(Predicate_LessThanOrEqual, a, b)
}
