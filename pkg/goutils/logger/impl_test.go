/*
 * Copyright (c) 2020-present unTill Pro, Ltd.
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MsgFormatter(t *testing.T) {
	var out string

	out = globalLogPrinter.getFormattedMsg("", "cbuffer.assemble", 120, "line1")
	assert.True(t, strings.Contains(out, ": [cbuffer.assemble:120]: line1"))

	out = globalLogPrinter.getFormattedMsg("", "", 121, "line1", "line2")
	assert.True(t, strings.Contains(out, ": [:121]: line1 line2"))

	out = globalLogPrinter.getFormattedMsg("m1:m2/m3", "cbuffer.assemble", 126, "line1", "line2", "line3")
	assert.True(t, strings.Contains(out, "m1:m2/m3: [cbuffer.assemble:126]: line1 line2 line3"))
}

func Test_CheckRightPrefix(t *testing.T) {
	defer SetLogLevel(LogLevelInfo)

	SetLogLevel(LogLevelInfo)
	assert.Equal(t, infoPrefix, getLevelPrefix(globalLogPrinter.logLevel))

	SetLogLevel(LogLevelTrace)
	assert.Equal(t, tracePrefix, getLevelPrefix(globalLogPrinter.logLevel))

	SetLogLevel(LogLevelWarning)
	assert.Equal(t, warningPrefix, getLevelPrefix(globalLogPrinter.logLevel))

	SetLogLevel(LogLevelError)
	assert.Equal(t, errorPrefix, getLevelPrefix(globalLogPrinter.logLevel))

	SetLogLevel(7)
	require.Empty(t, getLevelPrefix(globalLogPrinter.logLevel))
}

func Test_LevelGuards(t *testing.T) {
	require := require.New(t)
	restore := SetLogLevelWithRestore(LogLevelVerbose)
	defer restore()

	require.True(IsVerbose())
	require.True(IsInfo())
	require.False(IsTrace())

	var lines []string
	oldPrint := PrintLine
	PrintLine = func(level TLogLevel, line string) { lines = append(lines, line) }
	defer func() { PrintLine = oldPrint }()

	Verbose("visible")
	Trace("hidden")
	require.Len(lines, 1)
	require.Contains(lines[0], "visible")
}

func Test_CtxAttrs(t *testing.T) {
	require := require.New(t)
	restore := SetLogLevelWithRestore(LogLevelVerbose)
	defer restore()

	out := bytes.NewBuffer(nil)
	SetCtxWriters(out, out)

	ctx := WithContextAttrs(context.Background(), LogAttr_Component, "USERMAINT")
	ctx = WithContextAttrs(ctx, LogAttr_Record, "PSOPRDEFN")
	VerboseCtx(ctx, "hello")

	s := out.String()
	require.Contains(s, "component=USERMAINT")
	require.Contains(s, "record=PSOPRDEFN")
	require.Contains(s, "level=VERBOSE")
}
