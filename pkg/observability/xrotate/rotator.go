package xrotate

import (
	"fmt"
	"io"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/omeyang/xviz/pkg/util/xfile"
)

// 编译时断言：Rotator 是 io.WriteCloser 的超集
var _ io.WriteCloser = (Rotator)(nil)

// Rotator 日志轮转器，所有实现必须并发安全。
// Close 之后 Write/Rotate 返回 [ErrClosed]。
type Rotator interface {
	Write(p []byte) (n int, err error)
	Close() error
	// Rotate 手动触发轮转。
	Rotate() error
}

// 默认配置。
const (
	DefaultMaxSizeMB  = 100
	DefaultMaxBackups = 5
	DefaultMaxAgeDays = 30

	maxSizeMB  = 10240
	maxBackups = 1024
	maxAgeDays = 3650
)

type config struct {
	maxSizeMB  int
	maxBackups int
	maxAgeDays int
	compress   bool
	localTime  bool
}

// Option lumberjack 配置选项。
type Option func(*config)

// WithMaxSize 设置单个文件最大大小（MB）。
func WithMaxSize(mb int) Option {
	return func(c *config) { c.maxSizeMB = mb }
}

// WithMaxBackups 设置保留的备份数量，0 表示不限制。
func WithMaxBackups(n int) Option {
	return func(c *config) { c.maxBackups = n }
}

// WithMaxAge 设置备份保留天数，0 表示不按天数清理。
func WithMaxAge(days int) Option {
	return func(c *config) { c.maxAgeDays = days }
}

// WithCompress 设置是否 gzip 压缩备份。
func WithCompress(compress bool) Option {
	return func(c *config) { c.compress = compress }
}

// WithLocalTime 设置备份文件名是否使用本地时间（默认 UTC）。
func WithLocalTime(local bool) Option {
	return func(c *config) { c.localTime = local }
}

type lumberjackRotator struct {
	logger *lumberjack.Logger
	closed atomic.Bool
}

// NewLumberjack 创建基于 lumberjack 的轮转器。
// 文件路径经过 xfile.SanitizePath 校验，父目录不存在时自动创建（0750）。
func NewLumberjack(filename string, opts ...Option) (Rotator, error) {
	if filename == "" {
		return nil, ErrEmptyFilename
	}
	cfg := config{
		maxSizeMB:  DefaultMaxSizeMB,
		maxBackups: DefaultMaxBackups,
		maxAgeDays: DefaultMaxAgeDays,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	path, err := xfile.SanitizePath(filename)
	if err != nil {
		return nil, err
	}
	if err := xfile.EnsureDir(path); err != nil {
		return nil, err
	}

	return &lumberjackRotator{
		logger: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.maxSizeMB,
			MaxBackups: cfg.maxBackups,
			MaxAge:     cfg.maxAgeDays,
			Compress:   cfg.compress,
			LocalTime:  cfg.localTime,
		},
	}, nil
}

func (c *config) validate() error {
	if c.maxSizeMB <= 0 || c.maxSizeMB > maxSizeMB {
		return fmt.Errorf("%w: got %d, want 1~%d", ErrInvalidMaxSize, c.maxSizeMB, maxSizeMB)
	}
	if c.maxBackups < 0 || c.maxBackups > maxBackups {
		return fmt.Errorf("%w: got %d, want 0~%d", ErrInvalidMaxBackups, c.maxBackups, maxBackups)
	}
	if c.maxAgeDays < 0 || c.maxAgeDays > maxAgeDays {
		return fmt.Errorf("%w: got %d, want 0~%d", ErrInvalidMaxAge, c.maxAgeDays, maxAgeDays)
	}
	return nil
}

// Write 实现 io.Writer。
func (r *lumberjackRotator) Write(p []byte) (int, error) {
	if r.closed.Load() {
		return 0, ErrClosed
	}
	n, err := r.logger.Write(p)
	if err != nil && r.closed.Load() {
		// Write 与 Close 并发时统一返回 ErrClosed
		return n, ErrClosed
	}
	return n, err
}

// Close 关闭底层文件。重复调用返回 [ErrClosed]。
func (r *lumberjackRotator) Close() error {
	if r.closed.Swap(true) {
		return ErrClosed
	}
	return r.logger.Close()
}

// Rotate 手动触发轮转。
func (r *lumberjackRotator) Rotate() error {
	if r.closed.Load() {
		return ErrClosed
	}
	return r.logger.Rotate()
}
