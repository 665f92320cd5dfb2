package xlog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// context 注入字段的 key
const (
	KeyRunID  = "run_id"
	KeyMethod = "method"
)

type runIDKey struct{}

type methodKey struct{}

// NewRunID 生成一次运行的唯一标识（UUIDv4）。
func NewRunID() string {
	return uuid.NewString()
}

// WithRunID 将 run_id 写入 context。
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunID 读取 context 中的 run_id，不存在时返回空字符串。
func RunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// WithMethod 将采样方法名写入 context。
func WithMethod(ctx context.Context, method string) context.Context {
	return context.WithValue(ctx, methodKey{}, method)
}

// MethodFrom 读取 context 中的采样方法名。
func MethodFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	m, _ := ctx.Value(methodKey{}).(string)
	return m
}

// EnrichHandler 从 context 提取 run_id 与 method 并注入日志。
//
// 缺少字段时不注入，不影响日志记录。
type EnrichHandler struct {
	base slog.Handler
}

// NewEnrichHandler 创建 EnrichHandler
func NewEnrichHandler(base slog.Handler) (*EnrichHandler, error) {
	if base == nil {
		return nil, ErrNilHandler
	}
	return &EnrichHandler{base: base}, nil
}

// Enabled 委托给底层 handler
func (h *EnrichHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

// Handle 注入 context 字段后交给底层 handler。
// 按 slog 契约，修改前先 Clone record。
func (h *EnrichHandler) Handle(ctx context.Context, r slog.Record) error {
	var buf [2]slog.Attr
	attrs := buf[:0]
	if id := RunID(ctx); id != "" {
		attrs = append(attrs, slog.String(KeyRunID, id))
	}
	if m := MethodFrom(ctx); m != "" {
		attrs = append(attrs, slog.String(KeyMethod, m))
	}
	if len(attrs) > 0 {
		r = r.Clone()
		r.AddAttrs(attrs...)
	}
	return h.base.Handle(ctx, r)
}

// WithAttrs 返回带额外属性的新 handler
func (h *EnrichHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &EnrichHandler{base: h.base.WithAttrs(attrs)}
}

// WithGroup 返回带分组的新 handler
func (h *EnrichHandler) WithGroup(name string) slog.Handler {
	return &EnrichHandler{base: h.base.WithGroup(name)}
}
