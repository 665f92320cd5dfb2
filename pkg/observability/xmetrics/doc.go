// Package xmetrics 基于 OpenTelemetry 的观测封装。
//
// 每次采样方法运行对应一个 span，结束时记录运行次数与耗时；
// 采样过程中累加弦数量，得到估计值后记录到直方图：
//
//	obs, err := xmetrics.NewOTelObserver(xmetrics.WithMeterProvider(mp))
//	ctx, span := xmetrics.Start(ctx, obs, xmetrics.SpanOptions{
//	    Component: "bertrand",
//	    Operation: "sample",
//	    Attrs:     []xmetrics.Attr{{Key: "method", Value: "radial"}},
//	})
//	obs.AddChords(ctx, "radial", n)
//	obs.RecordEstimate(ctx, "radial", p)
//	span.End(xmetrics.Result{Err: err})
//
// 未配置 provider 时使用 otel 全局 provider（默认是 noop）。
package xmetrics
