package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xviz/pkg/config/xconf"
	"github.com/omeyang/xviz/pkg/observability/xlog"
	"github.com/omeyang/xviz/pkg/observability/xrotate"
	"github.com/omeyang/xviz/pkg/sim/xchord"
	"github.com/omeyang/xviz/pkg/viz/xplot"
)

// 日志文件轮转参数。
const (
	logMaxSizeMB  = 50
	logMaxBackups = 3
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "图片输出目录",
			Value:   xconf.DefaultOutDir,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "随机种子，0 使用固定默认种子",
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"w"},
			Usage:   "每种方法的采样并发数，0 表示 CPU 核数",
		},
		&cli.StringSliceFlag{
			Name:    "method",
			Aliases: []string{"m"},
			Usage:   "只运行指定方法（endpoints|radial|midpoint|1|2|3），可重复",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML/JSON 配置文件",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "日志级别 (debug|info|warn|error)",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "日志格式 (text|json)",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "日志文件，按大小轮转",
		},
		&cli.BoolFlag{
			Name:  "progress",
			Usage: "显示采样进度条",
		},
		&cli.BoolFlag{
			Name:  "no-plots",
			Usage: "只估计概率，不输出图片",
		},
	}
}

// loadSettings 读取配置文件并以命令行参数覆盖。
func loadSettings(cmd *cli.Command) (xconf.Settings, error) {
	s, err := xconf.LoadSettings(cmd.String("config"))
	if err != nil {
		return s, err
	}
	if cmd.IsSet("out") || s.OutDir == "" {
		s.OutDir = cmd.String("out")
	}
	if cmd.IsSet("seed") {
		s.Seed = cmd.Int64("seed")
	}
	if cmd.IsSet("workers") {
		s.Workers = cmd.Int("workers")
	}
	if cmd.IsSet("log-level") {
		s.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		s.Log.Format = cmd.String("log-format")
	}
	if cmd.IsSet("log-file") {
		s.Log.File = cmd.String("log-file")
	}
	return s, s.Validate()
}

// parseCount 解析位置参数 N。缺省时使用配置文件中的 samples。
func parseCount(cmd *cli.Command, fallback int) (int, error) {
	if cmd.Args().Len() == 0 {
		if fallback > 0 {
			return fallback, nil
		}
		return 0, usage(errors.New("missing sample count N"))
	}
	if cmd.Args().Len() > 1 {
		return 0, usage(fmt.Errorf("expected one argument N, got %d", cmd.Args().Len()))
	}
	arg := cmd.Args().First()
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, usage(fmt.Errorf("sample count %q is not an integer", arg))
	}
	if n < 1 {
		return 0, usage(fmt.Errorf("%w: got %d, want >= 1", xchord.ErrInvalidCount, n))
	}
	return n, nil
}

// parseMethods 解析 --method，未指定时返回全部方法。重复项只保留一次。
func parseMethods(names []string) ([]xchord.Method, error) {
	if len(names) == 0 {
		return xchord.Methods(), nil
	}
	seen := make(map[xchord.Method]bool, len(names))
	methods := make([]xchord.Method, 0, len(names))
	for _, name := range names {
		m, err := xchord.ParseMethod(name)
		if err != nil {
			return nil, err
		}
		if !seen[m] {
			seen[m] = true
			methods = append(methods, m)
		}
	}
	return methods, nil
}

// resolveColors 合并配置中的颜色与默认配色。
func resolveColors(s xconf.Settings) (map[xchord.Method]color.NRGBA, error) {
	out := make(map[xchord.Method]color.NRGBA, len(xchord.Methods()))
	for _, m := range xchord.Methods() {
		out[m] = xplot.DefaultColor(m)
	}
	for name, hex := range s.Colors {
		m, err := xchord.ParseMethod(name)
		if err != nil {
			return nil, fmt.Errorf("colors: %w", err)
		}
		c, err := xplot.ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("colors.%s: %w", name, err)
		}
		out[m] = c
	}
	return out, nil
}

// newLogger 按运行参数构建日志器。
func newLogger(s xconf.Settings, stderr io.Writer) (xlog.LoggerWithLevel, func() error, error) {
	return xlog.New().
		SetOutput(stderr).
		SetLevelString(s.Log.Level).
		SetFormat(s.Log.Format).
		SetRotation(s.Log.File,
			xrotate.WithMaxSize(logMaxSizeMB),
			xrotate.WithMaxBackups(logMaxBackups),
		).
		SetAttrs(xlog.Component("bertrand")).
		Build()
}
