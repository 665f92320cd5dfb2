// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog 扩展，自动注入 run_id/method
//   - xmetrics: 基于 OpenTelemetry 的 span 与采样指标
//   - xrotate: 日志文件轮转
package observability
