/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package defs

import (
	"github.com/voedger/cbuffer/pkg/ptypes"
)

func ErrRecordNotFound(name string) error {
	return ptypes.ErrNotFound("record «%s»", name)
}

func ErrPageNotFound(name string) error {
	return ptypes.ErrNotFound("page «%s»", name)
}

func ErrComponentNotFound(name, market string) error {
	return ptypes.ErrNotFound("component «%s.%s»", name, market)
}

func ErrFieldNotFound(rec, field string) error {
	return ptypes.ErrNotFound("field «%s.%s»", rec, field)
}

func ErrCyclicNesting(kind, path string) error {
	return ptypes.ErrStructuralIntegrity("cyclic %s nesting: %s", kind, path)
}
