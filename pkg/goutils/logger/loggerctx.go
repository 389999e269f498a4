/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

type ctxAttrsKey struct{}

var (
	// handler-level filtering is disabled, isEnabled() gates all calls
	ctxHandlerOpts = &slog.HandlerOptions{
		Level: slog.LevelDebug - 4,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				switch a.Value.Any().(slog.Level) {
				case slog.LevelDebug:
					a.Value = slog.StringValue("VERBOSE")
				case slog.LevelDebug - 4:
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
	slogOut = slog.New(slog.NewTextHandler(os.Stdout, ctxHandlerOpts))
	slogErr = slog.New(slog.NewTextHandler(os.Stderr, ctxHandlerOpts))
)

// SetCtxWriters redirects the output of the *Ctx functions
func SetCtxWriters(out, err io.Writer) {
	slogOut = slog.New(slog.NewTextHandler(out, ctxHandlerOpts))
	slogErr = slog.New(slog.NewTextHandler(err, ctxHandlerOpts))
}

// WithContextAttrs returns a context which carries the attribute for all *Ctx log lines.
// Attributes are appended in order, later values do not replace earlier ones.
func WithContextAttrs(ctx context.Context, name string, value any) context.Context {
	var attrs []slog.Attr
	if v, ok := ctx.Value(ctxAttrsKey{}).([]slog.Attr); ok {
		attrs = append(attrs, v...)
	}
	attrs = append(attrs, slog.Any(name, value))
	return context.WithValue(ctx, ctxAttrsKey{}, attrs)
}

func VerboseCtx(ctx context.Context, args ...interface{}) {
	logCtx(ctx, LogLevelVerbose, slog.LevelDebug, args...)
}

func ErrorCtx(ctx context.Context, args ...interface{}) {
	logCtx(ctx, LogLevelError, slog.LevelError, args...)
}

func InfoCtx(ctx context.Context, args ...interface{}) {
	logCtx(ctx, LogLevelInfo, slog.LevelInfo, args...)
}

func WarningCtx(ctx context.Context, args ...interface{}) {
	logCtx(ctx, LogLevelWarning, slog.LevelWarn, args...)
}

func TraceCtx(ctx context.Context, args ...interface{}) {
	logCtx(ctx, LogLevelTrace, slog.LevelDebug-4, args...)
}

func logCtx(ctx context.Context, level TLogLevel, slogLevel slog.Level, args ...interface{}) {
	if !isEnabled(level) {
		return
	}
	log := slogOut
	if level == LogLevelError {
		log = slogErr
	}
	attrsFromCtx := sLogAttrsFromCtx(ctx)
	attrs := make([]any, 0, len(attrsFromCtx)+1)
	fn, line := getFuncName(logCtxSkipFrames)
	attrs = append(attrs, slog.Attr{Key: "src", Value: slog.StringValue(fmt.Sprintf("%s:%d", fn, line))})
	attrs = append(attrs, attrsFromCtx...)
	log.Log(ctx, slogLevel, fmt.Sprint(args...), attrs...)
}

func sLogAttrsFromCtx(ctx context.Context) []any {
	v, ok := ctx.Value(ctxAttrsKey{}).([]slog.Attr)
	if !ok {
		return nil
	}
	res := make([]any, 0, len(v))
	for _, a := range v {
		res = append(res, a)
	}
	return res
}
