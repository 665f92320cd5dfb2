package xrotate

import "errors"

var (
	// ErrEmptyFilename 文件名为空。
	ErrEmptyFilename = errors.New("xrotate: filename is required")

	// ErrInvalidMaxSize MaxSizeMB 超出 1~10240。
	ErrInvalidMaxSize = errors.New("xrotate: invalid MaxSizeMB")

	// ErrInvalidMaxBackups MaxBackups 超出 0~1024。
	ErrInvalidMaxBackups = errors.New("xrotate: invalid MaxBackups")

	// ErrInvalidMaxAge MaxAgeDays 超出 0~3650。
	ErrInvalidMaxAge = errors.New("xrotate: invalid MaxAgeDays")

	// ErrClosed 轮转器已关闭。
	ErrClosed = errors.New("xrotate: rotator is closed")
)
