package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xviz/pkg/lifecycle/xrun"
	"github.com/omeyang/xviz/pkg/observability/xlog"
	"github.com/omeyang/xviz/pkg/observability/xmetrics"
	"github.com/omeyang/xviz/pkg/sim/xnewton"
	"github.com/omeyang/xviz/pkg/viz/xplot"
)

// newton 子命令默认值。
const (
	defaultGridSize   = 500
	defaultIterations = 20
	defaultZoom       = 4.0
	maxGridSize       = 4000
	maxFrames         = 500
)

var errNewtonArgs = errors.New("newton: invalid argument")

func createNewtonCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "newton",
		Usage: "渲染多项式的 Newton-Raphson 吸引域分形",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "poly",
				Usage: "示例多项式: real (2x³+5x²−14x−2) 或 complex (z⁵+z²−z+1)",
				Value: "real",
			},
			&cli.IntFlag{
				Name:  "size",
				Usage: "网格边长（像素）",
				Value: defaultGridSize,
			},
			&cli.IntFlag{
				Name:  "iter",
				Usage: "每个网格点的迭代次数",
				Value: defaultIterations,
			},
			&cli.IntFlag{
				Name:  "frames",
				Usage: "向第一个根缩放的帧数，1 表示只输出整体视图",
				Value: 1,
			},
			&cli.FloatFlag{
				Name:  "zoom",
				Usage: "最后一帧相对第一帧的放大倍数",
				Value: defaultZoom,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return newtonAction(ctx, cmd, stdout, stderr)
		},
	}
}

// newtonArgs newton 子命令参数。
type newtonArgs struct {
	name       string
	poly       xnewton.Polynomial
	size       int
	iterations int
	frames     int
	zoom       float64
}

func parseNewtonArgs(cmd *cli.Command) (newtonArgs, error) {
	a := newtonArgs{
		name:       strings.ToLower(strings.TrimSpace(cmd.String("poly"))),
		size:       cmd.Int("size"),
		iterations: cmd.Int("iter"),
		frames:     cmd.Int("frames"),
		zoom:       cmd.Float("zoom"),
	}
	switch a.name {
	case "real":
		a.poly = xnewton.DemoReal()
	case "complex":
		a.poly = xnewton.DemoComplex()
	default:
		return a, fmt.Errorf("%w: unknown polynomial %q", errNewtonArgs, a.name)
	}
	switch {
	case a.size < 2 || a.size > maxGridSize:
		return a, fmt.Errorf("%w: size %d, want 2~%d", errNewtonArgs, a.size, maxGridSize)
	case a.iterations < 1:
		return a, fmt.Errorf("%w: iter %d, want >= 1", errNewtonArgs, a.iterations)
	case a.frames < 1 || a.frames > maxFrames:
		return a, fmt.Errorf("%w: frames %d, want 1~%d", errNewtonArgs, a.frames, maxFrames)
	case a.zoom < 1:
		return a, fmt.Errorf("%w: zoom %g, want >= 1", errNewtonArgs, a.zoom)
	}
	return a, nil
}

// zoomTarget 返回以 center 为中心、边长缩小 zoom 倍的视窗。
func zoomTarget(start xnewton.Limits, center complex128, zoom float64) xnewton.Limits {
	hx := (start.XMax - start.XMin) / 2 / zoom
	hy := (start.YMax - start.YMin) / 2 / zoom
	return xnewton.Limits{
		XMin: real(center) - hx, XMax: real(center) + hx,
		YMin: imag(center) - hy, YMax: imag(center) + hy,
	}
}

// frameName 单帧输出 newton-<poly>.png，多帧追加三位序号。
func frameName(poly string, i, frames int) string {
	if frames == 1 {
		return xplot.FileName("newton", poly)
	}
	return xplot.FileName("newton", fmt.Sprintf("%s-%03d", poly, i))
}

func newtonAction(ctx context.Context, cmd *cli.Command, stdout, stderr io.Writer) error {
	if cmd.Args().Len() > 0 {
		return usage(fmt.Errorf("%w: unexpected arguments %v", errNewtonArgs, cmd.Args().Slice()))
	}
	a, err := parseNewtonArgs(cmd)
	if err != nil {
		return usage(err)
	}
	s, err := loadSettings(cmd)
	if err != nil {
		return classify(err)
	}
	logger, cleanup, err := newLogger(s, stderr)
	if err != nil {
		return classify(err)
	}
	defer func() { _ = cleanup() }()

	obs, err := xmetrics.NewOTelObserver()
	if err != nil {
		return err
	}

	roots, err := a.poly.Roots()
	if err != nil {
		return err
	}
	start := xnewton.DefaultLimits(roots)
	frames := xnewton.Frames(start, zoomTarget(start, roots[0], a.zoom), a.frames)

	ctx = xlog.WithRunID(ctx, xlog.NewRunID())
	var written []string
	task := func(ctx context.Context) (err error) {
		ctx, span := xmetrics.Start(ctx, obs, xmetrics.SpanOptions{
			Component: "bertrand",
			Operation: "newton",
			Attrs: []xmetrics.Attr{
				{Key: "poly", Value: a.name},
				{Key: "size", Value: a.size},
				{Key: "frames", Value: len(frames)},
			},
		})
		defer func() { span.End(xmetrics.Result{Err: err}) }()

		for i, lim := range frames {
			begin := time.Now()
			grid, err := xnewton.Grid(a.size, lim)
			if err != nil {
				return err
			}
			basins, err := xnewton.Basins(ctx, a.poly, grid, a.iterations, roots)
			if err != nil {
				return err
			}
			title := fmt.Sprintf("Newton fractal | %s", a.name)
			p, err := xplot.Fractal(title, basins, a.size, len(roots), lim)
			if err != nil {
				return err
			}
			path, err := xplot.Save(p, s.OutDir, frameName(a.name, i, len(frames)), xplot.DefaultSize)
			if err != nil {
				return err
			}
			written = append(written, path)
			logger.Debug(ctx, "frame written", xlog.Path(path), xlog.Duration(time.Since(begin)))
		}
		return nil
	}

	err = xrun.Run(ctx, []xrun.Task{{Name: "newton", Fn: task}},
		xrun.WithName("bertrand"), xrun.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.Info(ctx, "newton fractal done",
		slog.Int("roots", len(roots)),
		xlog.Samples(a.size*a.size),
	)
	for _, path := range written {
		fmt.Fprintf(stdout, "wrote %s\n", path)
	}
	return nil
}
