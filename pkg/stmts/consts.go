/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package stmts

// Default size of statement templates LRU cache
const DefaultTemplateCacheSize = 256

// Date format of TO_DATE and TO_CHAR directives
const sqlDateFormat = "'YYYY-MM-DD'"

const (
	mainAlias = "A"
	subAlias  = "B"
)
