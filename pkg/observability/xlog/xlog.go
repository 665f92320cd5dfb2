package xlog

import (
	"context"
	"log/slog"
)

// Logger 日志接口
//
// 方法签名只接受 slog.Attr，避免隐式 key-value 转换。
type Logger interface {
	Debug(ctx context.Context, msg string, attrs ...slog.Attr)
	Info(ctx context.Context, msg string, attrs ...slog.Attr)
	Warn(ctx context.Context, msg string, attrs ...slog.Attr)
	Error(ctx context.Context, msg string, attrs ...slog.Attr)

	// With 返回带额外属性的派生 Logger，派生 logger 共享父级的级别。
	With(attrs ...slog.Attr) Logger
}

// Leveler 级别控制接口
type Leveler interface {
	// SetLevel 动态设置日志级别
	SetLevel(level Level)

	// GetLevel 获取当前日志级别
	GetLevel() Level

	// Enabled 检查指定级别是否启用
	Enabled(ctx context.Context, level Level) bool
}

// LoggerWithLevel 组合接口，Build() 返回此接口。
type LoggerWithLevel interface {
	Logger
	Leveler
}
