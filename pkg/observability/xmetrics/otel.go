package xmetrics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultInstrumentationName = "github.com/omeyang/xviz/xmetrics"
	unknown                    = "unknown"

	// 指标名称
	MetricRunTotal    = "xviz.run.total"
	MetricRunDuration = "xviz.run.duration"
	MetricChordsTotal = "xviz.chords.total"
	MetricEstimate    = "xviz.estimate"
)

type otelConfig struct {
	instrumentationName string
	tracerProvider      trace.TracerProvider
	meterProvider       metric.MeterProvider
}

// Option 定义 OTel Observer 的配置选项。
type Option func(*otelConfig)

// WithInstrumentationName 设置 instrumentation 名称，空值忽略。
func WithInstrumentationName(name string) Option {
	return func(cfg *otelConfig) {
		if name != "" {
			cfg.instrumentationName = name
		}
	}
}

// WithTracerProvider 设置 TracerProvider，nil 忽略。
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(cfg *otelConfig) {
		if provider != nil {
			cfg.tracerProvider = provider
		}
	}
}

// WithMeterProvider 设置 MeterProvider，nil 忽略。
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(cfg *otelConfig) {
		if provider != nil {
			cfg.meterProvider = provider
		}
	}
}

type otelObserver struct {
	tracer   trace.Tracer
	runs     metric.Int64Counter
	duration metric.Float64Histogram
	chords   metric.Int64Counter
	estimate metric.Float64Histogram
}

// NewOTelObserver 创建基于 OpenTelemetry 的 Observer。
func NewOTelObserver(opts ...Option) (Observer, error) {
	cfg := &otelConfig{
		instrumentationName: defaultInstrumentationName,
		tracerProvider:      otel.GetTracerProvider(),
		meterProvider:       otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	meter := cfg.meterProvider.Meter(cfg.instrumentationName)
	o := &otelObserver{tracer: cfg.tracerProvider.Tracer(cfg.instrumentationName)}

	var err error
	if o.runs, err = meter.Int64Counter(MetricRunTotal,
		metric.WithDescription("completed sampling runs"),
		metric.WithUnit("1"),
	); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInstrument, MetricRunTotal, err)
	}
	if o.duration, err = meter.Float64Histogram(MetricRunDuration,
		metric.WithDescription("sampling run duration"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInstrument, MetricRunDuration, err)
	}
	if o.chords, err = meter.Int64Counter(MetricChordsTotal,
		metric.WithDescription("generated chords"),
		metric.WithUnit("{chord}"),
	); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInstrument, MetricChordsTotal, err)
	}
	if o.estimate, err = meter.Float64Histogram(MetricEstimate,
		metric.WithDescription("estimated probability of a long chord"),
		metric.WithUnit("1"),
		metric.WithExplicitBucketBoundaries(0, 0.125, 0.25, 0.3, 1.0/3, 0.4, 0.5, 0.75, 1),
	); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInstrument, MetricEstimate, err)
	}
	return o, nil
}

// Start 开始一次观测跨度。
func (o *otelObserver) Start(ctx context.Context, opts SpanOptions) (context.Context, Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	component := opts.Component
	if component == "" {
		component = unknown
	}
	operation := opts.Operation
	if operation == "" {
		operation = unknown
	}

	attrs := make([]attribute.KeyValue, 0, 2+len(opts.Attrs))
	attrs = append(attrs,
		attribute.String("component", component),
		attribute.String("operation", operation),
	)
	attrs = append(attrs, attrsToOTel(opts.Attrs)...)

	ctx, span := o.tracer.Start(ctx, operation,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	return ctx, &otelSpan{
		span:      span,
		observer:  o,
		ctx:       ctx,
		component: component,
		operation: operation,
		start:     time.Now(),
	}
}

// AddChords 累加弦数量，n <= 0 忽略。
func (o *otelObserver) AddChords(ctx context.Context, method string, n int64) {
	if n <= 0 {
		return
	}
	o.chords.Add(metricsContext(ctx), n, metric.WithAttributes(attribute.String("method", method)))
}

// RecordEstimate 记录估计值。
func (o *otelObserver) RecordEstimate(ctx context.Context, method string, p float64) {
	o.estimate.Record(metricsContext(ctx), p, metric.WithAttributes(attribute.String("method", method)))
}

type otelSpan struct {
	span      trace.Span
	observer  *otelObserver
	ctx       context.Context
	component string
	operation string
	start     time.Time
	endOnce   sync.Once
}

// End 结束观测并记录结果，幂等。
func (s *otelSpan) End(result Result) {
	s.endOnce.Do(func() {
		status := resolveStatus(result)
		if result.Err != nil {
			s.span.RecordError(result.Err)
		}
		if status == StatusError {
			msg := "operation failed"
			if result.Err != nil {
				msg = result.Err.Error()
			}
			s.span.SetStatus(codes.Error, msg)
		} else {
			s.span.SetStatus(codes.Ok, "")
		}
		if len(result.Attrs) > 0 {
			s.span.SetAttributes(attrsToOTel(result.Attrs)...)
		}
		s.span.End()

		// 取消后的运行也要计入指标
		ctx := metricsContext(s.ctx)
		attrs := metric.WithAttributes(
			attribute.String("component", s.component),
			attribute.String("operation", s.operation),
			attribute.String("status", string(status)),
		)
		s.observer.runs.Add(ctx, 1, attrs)
		s.observer.duration.Record(ctx, time.Since(s.start).Seconds(), attrs)
	})
}

func metricsContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return context.WithoutCancel(ctx)
}

func resolveStatus(result Result) Status {
	if result.Status != "" {
		return result.Status
	}
	if result.Err != nil {
		return StatusError
	}
	return StatusOK
}

func attrsToOTel(attrs []Attr) []attribute.KeyValue {
	if len(attrs) == 0 {
		return nil
	}
	converted := make([]attribute.KeyValue, 0, len(attrs))
	for _, attr := range attrs {
		if attr.Key == "" || attr.Value == nil {
			continue
		}
		converted = append(converted, toKeyValue(attr))
	}
	return converted
}

func toKeyValue(attr Attr) attribute.KeyValue {
	switch v := attr.Value.(type) {
	case string:
		return attribute.String(attr.Key, v)
	case bool:
		return attribute.Bool(attr.Key, v)
	case int:
		return attribute.Int(attr.Key, v)
	case int64:
		return attribute.Int64(attr.Key, v)
	case float64:
		return attribute.Float64(attr.Key, v)
	case time.Duration:
		return attribute.Int64(attr.Key, v.Nanoseconds())
	case fmt.Stringer:
		return attribute.String(attr.Key, v.String())
	default:
		return attribute.String(attr.Key, fmt.Sprint(v))
	}
}
