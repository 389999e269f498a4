/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package stmts

import "context"

// Resolves key field values from buffer context
type IKeyResolver interface {
	// Returns non-blank value of the key field, false if value is unknown or blank
	ResolveKey(field string) (string, bool)
}

// Executes statements
type IExecutor interface {
	Query(ctx context.Context, stmt *Statement) (*ResultSet, error)
}
