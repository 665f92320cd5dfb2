// Package xrun 基于 errgroup + context 并发运行一组有限任务。
//
// 任一任务返回错误或收到退出信号时，其余任务的 context 被取消：
//
//	err := xrun.Run(ctx, []xrun.Task{
//	    {Name: "endpoints", Fn: runEndpoints},
//	    {Name: "radial", Fn: runRadial},
//	}, xrun.WithLogger(logger))
//	if errors.Is(err, xrun.ErrSignal) {
//	    // 被 SIGINT/SIGTERM 中断
//	}
//
// 与常驻服务不同，所有任务结束后 Run 即返回，信号监听随之停止。
package xrun
