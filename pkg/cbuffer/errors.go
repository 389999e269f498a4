/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package cbuffer

import (
	"github.com/voedger/cbuffer/pkg/ptypes"
)

func ErrRecordBufferNotFound(rec string, sb *ScrollBuffer) error {
	return ptypes.ErrStructuralIntegrity("record buffer «%s» not found in %v", rec, sb)
}

func ErrFieldBufferNotFound(rec, field string) error {
	return ptypes.ErrNotFound("record field buffer «%s.%s»", rec, field)
}

func ErrScrollLevelJump(from, to int) error {
	return ptypes.ErrStructuralIntegrity("scroll level jump from %d to %d", from, to)
}

func ErrMarkerStackNotEmpty(page string, size int) error {
	return ptypes.ErrStructuralIntegrity("scroll marker stack size is %d at the end of page «%s» token stream", size, page)
}

func ErrMarkerStackUnderflow(page string, tok any) error {
	return ptypes.ErrStructuralIntegrity("scroll marker stack underflow at «%v» in page «%s»", tok, page)
}

func ErrUnknownMarker(marker any) error {
	return ptypes.ErrStructuralIntegrity("secpage marker «%v» is not queued", marker)
}

func ErrExpansionMismatch(expected, actual any) error {
	return ptypes.ErrStructuralIntegrity("end of expansion «%v», expected «%v»", actual, expected)
}
