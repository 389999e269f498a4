/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package component

import (
	"github.com/voedger/cbuffer/pkg/ptypes"
)

func ErrSearchKeyNotFound(rec, field string) error {
	return ptypes.ErrNotFound("search key %s.%s", rec, field)
}

func ErrNoSearchRecord(c any) error {
	return ptypes.ErrUnsupported("search keys for %v without search record", c)
}
