package xrun

import (
	"os"
	"syscall"

	"github.com/omeyang/xviz/pkg/observability/xlog"
)

// Option Group 配置选项。
type Option func(*groupOptions)

type groupOptions struct {
	logger          xlog.Logger
	name            string
	limit           int
	signals         []os.Signal
	noSignalHandler bool
}

func defaultOptions() *groupOptions {
	return &groupOptions{
		logger: xlog.Default(),
		name:   "xrun",
	}
}

// DefaultSignals 默认监听的退出信号。
func DefaultSignals() []os.Signal {
	return []os.Signal{syscall.SIGINT, syscall.SIGTERM}
}

// WithLogger 设置日志记录器，nil 忽略。
func WithLogger(logger xlog.Logger) Option {
	return func(o *groupOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName 设置 Group 名称，出现在日志的 group 字段。
func WithName(name string) Option {
	return func(o *groupOptions) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLimit 限制同时运行的任务数，n <= 0 表示不限制。
func WithLimit(n int) Option {
	return func(o *groupOptions) {
		o.limit = n
	}
}

// WithSignals 自定义 Run 监听的信号，空列表使用 [DefaultSignals]。
func WithSignals(signals ...os.Signal) Option {
	copied := append([]os.Signal(nil), signals...)
	return func(o *groupOptions) {
		o.signals = copied
	}
}

// WithoutSignalHandler 禁用 Run 的信号监听。
func WithoutSignalHandler() Option {
	return func(o *groupOptions) {
		o.noSignalHandler = true
	}
}
