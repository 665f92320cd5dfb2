// Package xrotate 提供基于 lumberjack 的日志文件轮转。
//
// [Rotator] 实现 io.WriteCloser，可直接作为 xlog 的输出目标：
//
//	r, err := xrotate.NewLumberjack("/var/log/xviz/bertrand.log",
//	    xrotate.WithMaxSize(50),
//	    xrotate.WithMaxBackups(3),
//	)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
package xrotate
