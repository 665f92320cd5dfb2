package xlog

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

var (
	_ Logger          = (*xlogger)(nil)
	_ LoggerWithLevel = (*xlogger)(nil)
)

type xlogger struct {
	handler   slog.Handler
	levelVar  *slog.LevelVar
	addSource bool
}

// log 统一出口。skip=3 跳过 Callers、log 和 Debug/Info 等包装方法。
//
//go:noinline
func (l *xlogger) log(ctx context.Context, level slog.Level, msg string, attrs []slog.Attr, skip int) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.handler.Enabled(ctx, level) {
		return
	}

	var pc uintptr
	if l.addSource {
		var pcs [1]uintptr
		runtime.Callers(skip, pcs[:])
		pc = pcs[0]
	}

	r := slog.NewRecord(time.Now(), level, msg, pc)
	r.AddAttrs(attrs...)
	// 日志写入失败不向业务传播
	_ = l.handler.Handle(ctx, r) //nolint:errcheck // best-effort
}

func (l *xlogger) Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelDebug, msg, attrs, 3)
}

func (l *xlogger) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelInfo, msg, attrs, 3)
}

func (l *xlogger) Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelWarn, msg, attrs, 3)
}

func (l *xlogger) Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelError, msg, attrs, 3)
}

func (l *xlogger) With(attrs ...slog.Attr) Logger {
	if len(attrs) == 0 {
		return l
	}
	return &xlogger{
		handler:   l.handler.WithAttrs(attrs),
		levelVar:  l.levelVar,
		addSource: l.addSource,
	}
}

func (l *xlogger) SetLevel(level Level) {
	l.levelVar.Set(slog.Level(level))
}

func (l *xlogger) GetLevel() Level {
	return Level(l.levelVar.Level())
}

func (l *xlogger) Enabled(ctx context.Context, level Level) bool {
	if ctx == nil {
		ctx = context.Background()
	}
	return l.handler.Enabled(ctx, slog.Level(level))
}
