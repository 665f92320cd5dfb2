package xlog

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level 日志级别，与 slog.Level 兼容
type Level slog.Level

// 日志级别常量
const (
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

// String 返回级别名称，非标准级别委托给 slog（如 "INFO+2"）。
func (l Level) String() string {
	return slog.Level(l).String()
}

// UnmarshalText 实现 encoding.TextUnmarshaler，便于从配置文件直接解析。
func (l *Level) UnmarshalText(data []byte) error {
	parsed, err := ParseLevel(string(data))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel 解析 debug/info/warn/warning/error（大小写不敏感）。
// 空字符串视为 info。
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}
