/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package defparser

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/voedger/cbuffer/pkg/ptypes"
)

func errorAt(pos lexer.Position, err error) error {
	return fmt.Errorf("%s: %w", pos.String(), err)
}

func ErrDuplicate(kind, name string) error {
	return ptypes.ErrStructuralIntegrity("%s «%s» is already defined", kind, name)
}

func ErrUnknownKind(kind string) error {
	return ptypes.ErrUnsupported("field type «%s»", kind)
}

func ErrUnknownEvent(event string) error {
	return ptypes.ErrUnsupported("program event «%s»", event)
}

func ErrValuesMismatch(columns, values int) error {
	return ptypes.ErrStructuralIntegrity("%d values for %d columns", values, columns)
}
