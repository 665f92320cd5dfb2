package xmetrics

import "context"

// Status 表示观测结果状态。
type Status string

const (
	// StatusOK 表示成功。
	StatusOK Status = "ok"
	// StatusError 表示失败。
	StatusError Status = "error"
)

// Attr 表示观测属性。
type Attr struct {
	Key   string
	Value any
}

// SpanOptions 定义观测跨度的创建参数。
type SpanOptions struct {
	// Component 标识组件名称。
	Component string
	// Operation 标识操作名称，同时作为 span 名称。
	Operation string
	// Attrs 附加属性。
	Attrs []Attr
}

// Result 表示观测跨度结束时的结果。
type Result struct {
	// Status 表示操作状态；为空时根据 Err 推导。
	Status Status
	// Err 表示操作错误。
	Err error
	// Attrs 附加属性。
	Attrs []Attr
}

// Span 表示一次观测跨度。
type Span interface {
	// End 结束观测并记录结果，多次调用只生效一次。
	End(result Result)
}

// Observer 采样运行的观测接口。
type Observer interface {
	// Start 开始一次观测跨度。
	Start(ctx context.Context, opts SpanOptions) (context.Context, Span)

	// AddChords 累加 method 已生成的弦数量。
	AddChords(ctx context.Context, method string, n int64)

	// RecordEstimate 记录 method 的概率估计值。
	RecordEstimate(ctx context.Context, method string, p float64)
}

// NoopObserver 是空实现。
type NoopObserver struct{}

// Start 返回 ctx 和空跨度。
func (NoopObserver) Start(ctx context.Context, _ SpanOptions) (context.Context, Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	return ctx, NoopSpan{}
}

// AddChords 空实现。
func (NoopObserver) AddChords(context.Context, string, int64) {}

// RecordEstimate 空实现。
func (NoopObserver) RecordEstimate(context.Context, string, float64) {}

// NoopSpan 是空跨度实现。
type NoopSpan struct{}

// End 空实现。
func (NoopSpan) End(Result) {}

// Start 使用 observer 开始观测，保证返回非 nil 的 context 和 Span。
// observer 为 nil 时返回 [NoopSpan]。
func Start(ctx context.Context, observer Observer, opts SpanOptions) (context.Context, Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	if observer == nil {
		return ctx, NoopSpan{}
	}
	retCtx, span := observer.Start(ctx, opts)
	if retCtx == nil {
		retCtx = ctx
	}
	if span == nil {
		span = NoopSpan{}
	}
	return retCtx, span
}
