package xlog

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// 全局 Logger，定位于 CLI 等简单场景。

var (
	globalLogger atomic.Pointer[LoggerWithLevel]
	globalMu     sync.Mutex
)

// Default 返回全局 Logger，首次调用时惰性创建（stderr，Info，text）。
func Default() LoggerWithLevel {
	if l := globalLogger.Load(); l != nil {
		return *l
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if l := globalLogger.Load(); l != nil {
		return *l
	}
	logger, _, err := New().Build()
	if err != nil {
		// 默认参数不会失败，这里兜底为最小可用 logger
		lv := new(slog.LevelVar)
		logger = &xlogger{handler: slog.NewTextHandler(os.Stderr, nil), levelVar: lv}
	}
	globalLogger.Store(&logger)
	return logger
}

// SetDefault 替换全局 Logger，nil 被忽略。
func SetDefault(logger LoggerWithLevel) {
	if logger == nil {
		return
	}
	globalLogger.Store(&logger)
}

// ResetDefault 清除全局 Logger，下次 Default 重新创建。
func ResetDefault() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger.Store(nil)
}

// Debug 使用全局 Logger 记录 Debug 日志
func Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().Debug(ctx, msg, attrs...)
}

// Info 使用全局 Logger 记录 Info 日志
func Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().Info(ctx, msg, attrs...)
}

// Warn 使用全局 Logger 记录 Warn 日志
func Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().Warn(ctx, msg, attrs...)
}

// Error 使用全局 Logger 记录 Error 日志
func Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().Error(ctx, msg, attrs...)
}
