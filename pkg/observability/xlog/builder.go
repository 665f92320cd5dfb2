package xlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/omeyang/xviz/pkg/observability/xrotate"
)

// 输出格式
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Builder 日志配置构建器
//
// Set* 方法中出现的第一个错误会被记录，并在 Build 时返回。
type Builder struct {
	output       io.Writer
	levelVar     *slog.LevelVar
	format       string
	addSource    bool
	enableEnrich bool
	attrs        []slog.Attr
	rotator      xrotate.Rotator
	err          error
}

// New 创建配置构建器，默认 stderr、Info 级别、text 格式、启用 enrich。
func New() *Builder {
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)
	return &Builder{
		output:       os.Stderr,
		levelVar:     levelVar,
		format:       FormatText,
		enableEnrich: true,
	}
}

func (b *Builder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// SetOutput 设置日志输出目标
func (b *Builder) SetOutput(w io.Writer) *Builder {
	if w == nil {
		b.setErr(ErrNilOutput)
		return b
	}
	b.output = w
	return b
}

// SetLevel 设置日志级别
func (b *Builder) SetLevel(level Level) *Builder {
	b.levelVar.Set(slog.Level(level))
	return b
}

// SetLevelString 通过字符串设置日志级别
func (b *Builder) SetLevelString(s string) *Builder {
	level, err := ParseLevel(s)
	if err != nil {
		b.setErr(err)
		return b
	}
	return b.SetLevel(level)
}

// SetFormat 设置输出格式：text 或 json，空值使用 text。
func (b *Builder) SetFormat(format string) *Builder {
	normalized := strings.ToLower(strings.TrimSpace(format))
	switch normalized {
	case "":
		b.format = FormatText
	case FormatText, FormatJSON:
		b.format = normalized
	default:
		b.setErr(fmt.Errorf("%w: %q", ErrUnknownFormat, format))
	}
	return b
}

// SetAddSource 是否在日志中添加源码位置
func (b *Builder) SetAddSource(enable bool) *Builder {
	b.addSource = enable
	return b
}

// SetEnrich 是否从 context 注入 run_id/method，默认启用。
func (b *Builder) SetEnrich(enable bool) *Builder {
	b.enableEnrich = enable
	return b
}

// SetAttrs 设置每条日志都携带的固定属性（如 component）。
func (b *Builder) SetAttrs(attrs ...slog.Attr) *Builder {
	b.attrs = append(b.attrs, attrs...)
	return b
}

// SetRotation 输出到文件并按 opts 轮转。filename 为空时保持原输出。
func (b *Builder) SetRotation(filename string, opts ...xrotate.Option) *Builder {
	if filename == "" {
		return b
	}
	rotator, err := xrotate.NewLumberjack(filename, opts...)
	if err != nil {
		b.setErr(err)
		return b
	}
	b.rotator = rotator
	b.output = rotator
	return b
}

// Build 构建 Logger。返回的 cleanup 关闭轮转文件，可安全多次调用。
func (b *Builder) Build() (LoggerWithLevel, func() error, error) {
	if b.err != nil {
		if b.rotator != nil {
			_ = b.rotator.Close() //nolint:errcheck // 构建失败，关闭错误无意义
		}
		return nil, nil, b.err
	}

	opts := &slog.HandlerOptions{
		Level:     b.levelVar,
		AddSource: b.addSource,
	}

	var handler slog.Handler
	if b.format == FormatJSON {
		handler = slog.NewJSONHandler(b.output, opts)
	} else {
		handler = slog.NewTextHandler(b.output, opts)
	}
	if b.enableEnrich {
		handler = &EnrichHandler{base: handler}
	}
	if len(b.attrs) > 0 {
		handler = handler.WithAttrs(b.attrs)
	}

	logger := &xlogger{
		handler:   handler,
		levelVar:  b.levelVar,
		addSource: b.addSource,
	}
	return logger, b.createCleanup(), nil
}

func (b *Builder) createCleanup() func() error {
	var once sync.Once
	rotator := b.rotator
	return func() error {
		var err error
		once.Do(func() {
			if rotator != nil {
				err = rotator.Close()
			}
		})
		return err
	}
}
