/*
 * Copyright (c) 2020-present unTill Pro, Ltd.
 */

package logger

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

type logPrinter struct {
	logLevel TLogLevel
}

var globalLogPrinter = logPrinter{logLevel: LogLevelInfo}

func isEnabled(logLevel TLogLevel) bool {
	curLogLevel := TLogLevel(atomic.LoadInt32((*int32)(&globalLogPrinter.logLevel)))
	return curLogLevel >= logLevel
}

func printIfLevel(skipStackFrames int, logLevel TLogLevel, args ...interface{}) {
	if isEnabled(logLevel) {
		globalLogPrinter.print(skipStackFrames, logLevel, args...)
	}
}

func getLevelPrefix(level TLogLevel) string {
	switch level {
	case LogLevelError:
		return errorPrefix
	case LogLevelWarning:
		return warningPrefix
	case LogLevelInfo:
		return infoPrefix
	case LogLevelVerbose:
		return verbosePrefix
	case LogLevelTrace:
		return tracePrefix
	}
	return ""
}

// returns short function name ("pkg.func") and line of the caller
func getFuncName(skipCount int) (string, int) {
	pc, _, line, ok := runtime.Caller(skipCount)
	if !ok {
		return "", 0
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "", line
	}
	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name, line
}

func (p *logPrinter) getFormattedMsg(msgType string, funcName string, line int, args ...interface{}) string {
	t := time.Now()
	out := fmt.Sprint(t.Format("01/02 15:04:05.000"))
	out += fmt.Sprint(": " + msgType)
	out += fmt.Sprintf(": [%v:%v]:", funcName, line)
	if len(args) > 0 {
		var s string
		for _, arg := range args {
			s = s + fmt.Sprint(" ", arg)
		}
		out += s
	}
	return out
}

func (p *logPrinter) print(skipStackFrames int, level TLogLevel, args ...interface{}) {
	funcName, line := getFuncName(skipStackFramesCount + skipStackFrames)
	out := p.getFormattedMsg(getLevelPrefix(level), funcName, line, args...)
	PrintLine(level, out)
}
