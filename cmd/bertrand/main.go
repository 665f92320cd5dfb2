// bertrand 用三种"随机弦"取法演示 Bertrand 悖论。
//
// 用法:
//
//	bertrand [全局选项] N
//	bertrand [全局选项] newton [选项]
//
// 对 endpoints、radial、midpoint 三种方法各采样 N 条单位圆的弦，估计弦长
// 大于内接正三角形边长（√3）的概率，并在输出目录写出:
//
//	<method>-chords.png      全部弦
//	<method>-midpoints.png   弦中点分布
//	<method>-lengths.png     弦长直方图
//
// 全局选项:
//
//	-o, --out         输出目录 (默认: out)
//	    --seed        随机种子，0 使用固定默认种子
//	-w, --workers     每种方法的采样并发数，0 表示 CPU 核数
//	-m, --method      只运行指定方法，可重复 (endpoints|radial|midpoint|1|2|3)
//	-c, --config      YAML/JSON 配置文件，命令行参数优先
//	    --log-level   日志级别 (debug|info|warn|error)
//	    --log-format  日志格式 (text|json)
//	    --log-file    日志文件，按大小轮转
//	    --progress    显示采样进度条
//	    --no-plots    只估计概率，不输出图片
//
// 退出码:
//
//	0: 成功
//	1: 运行失败（文件写入失败、被信号中断等）
//	2: 参数错误（缺少 N、N 不是整数或小于 1、未知方法等）
//
// 示例:
//
//	bertrand 1000
//	bertrand --seed 42 -o plots -m radial 5000
//	bertrand -c bertrand.yaml --no-plots 100000
//	bertrand newton --poly complex --size 800
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xviz/pkg/config/xconf"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// createApp 创建 CLI 应用。
func createApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "bertrand",
		Usage:     "Bertrand 悖论的蒙特卡洛演示",
		ArgsUsage: "N",
		Version:   fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     globalFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return sampleAction(ctx, cmd, stdout, stderr)
		},
		Commands: []*cli.Command{
			createNewtonCommand(stdout, stderr),
		},
		// 禁止 urfave/cli 直接 os.Exit，由 run() 统一映射退出码
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(stderr, err)
			}
		},
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	err := createApp(stdout, stderr).Run(ctx, args)
	return exitCode(err, stderr)
}

// exitCode 把错误映射为退出码并输出错误信息。
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
		return 2
	}
	if isCLIUsageError(err) {
		fmt.Fprintf(stderr, "参数错误: %v\n", err)
		return 2
	}
	if errors.Is(err, xconf.ErrLoadFailed) {
		fmt.Fprintf(stderr, "读取配置失败: %v\n", err)
		return 1
	}
	fmt.Fprintf(stderr, "错误: %v\n", err)
	return 1
}
