/*
 * Copyright (c) 2020-present unTill Pro, Ltd.
 */

package logger

const (
	errorPrefix   = "*****"
	warningPrefix = "!!!"
	infoPrefix    = "==="
	verbosePrefix = "---"
	tracePrefix   = "..."
)

const (
	skipStackFramesCount = 4
	logCtxSkipFrames     = 3
)

// slog attribute names attached by the *Ctx functions
const (
	LogAttr_Component = "component"
	LogAttr_Page      = "page"
	LogAttr_Record    = "record"
	LogAttr_Field     = "field"
)
