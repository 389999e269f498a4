/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package stmts

import (
	"github.com/voedger/cbuffer/pkg/ptypes"
)

func ErrKeyNotResolvable(rec, key string) error {
	return ptypes.ErrDeferredResolution("key «%s» of «%s» has no value in buffer context", key, rec)
}

func ErrMultipleRows(stmt *Statement, cnt int) error {
	return ptypes.ErrStructuralIntegrity("%d rows returned, at most one expected: %v", cnt, stmt)
}

func ErrInvalidStatement(sql string, err error) error {
	return ptypes.ErrStructuralIntegrity("invalid statement «%s»: %v", sql, err)
}

func ErrUnsupportedStatement(what any) error {
	return ptypes.ErrUnsupported("statement construct %T", what)
}

func ErrTableNotFound(table string) error {
	return ptypes.ErrNotFound("table «%s»", table)
}

func ErrBindNotFound(arg string) error {
	return ptypes.ErrOutOfBounds("bind argument «%s»", arg)
}

func ErrBindSocket(socket string, binds int) error {
	return ptypes.ErrOutOfBounds("bind socket «%s», %d bind values given", socket, binds)
}

func ErrUnusedBind(n int) error {
	return ptypes.ErrStructuralIntegrity("bind value #%d is not referenced by any socket", n)
}
