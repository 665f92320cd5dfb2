// Package xlog 是基于 log/slog 的结构化日志库。
//
// 所有日志方法第一个参数都是 context.Context，EnrichHandler 会从中提取
// run_id 与 method 自动注入到每条日志：
//
//	logger, cleanup, err := xlog.New().
//	    SetLevelString("debug").
//	    SetFormat("json").
//	    Build()
//	if err != nil {
//	    return err
//	}
//	defer cleanup()
//
//	ctx = xlog.WithRunID(ctx, xlog.NewRunID())
//	ctx = xlog.WithMethod(ctx, "radial")
//	logger.Info(ctx, "sampling done", xlog.Samples(1000), xlog.Estimate(0.5))
//
// 输出到文件时通过 SetRotation 接入 xrotate（lumberjack）实现轮转。
package xlog
