/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rowsets

// Sort order literals as passed to Sort built-in
const (
	SortOrderLiteral_Ascending  = "A"
	SortOrderLiteral_Descending = "D"
)

const emitIndent = "  "
