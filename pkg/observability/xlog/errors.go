package xlog

import "errors"

var (
	// ErrUnknownLevel 无法识别的日志级别。
	ErrUnknownLevel = errors.New("xlog: unknown level")

	// ErrUnknownFormat 无法识别的输出格式（仅支持 text/json）。
	ErrUnknownFormat = errors.New("xlog: unknown format")

	// ErrNilOutput 输出目标为 nil。
	ErrNilOutput = errors.New("xlog: output is nil")

	// ErrNilHandler NewEnrichHandler 的 base handler 为 nil。
	ErrNilHandler = errors.New("xlog: base handler is nil")
)
